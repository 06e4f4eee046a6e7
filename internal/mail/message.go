// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"mime"
	"strings"
	"time"
)

// Message is a rendered email ready for delivery.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

const (
	verificationSubject  = "Verify Your Email"
	passwordResetSubject = "Reset Your Password"
)

var (
	verificationTemplate = template.Must(template.New("verification").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #e0e0e0;">
  <h2 style="color: #2563eb;">Email Verification</h2>
  <p style="font-size: 16px;">Thank you for registering! Please verify your email address by clicking the button below:</p>
  <div style="text-align: center; margin: 25px 0;">
    <a href="{{.Link}}" style="background-color: #2563eb; color: white; padding: 12px 24px; text-decoration: none; border-radius: 4px; font-weight: bold; display: inline-block;">Verify Email</a>
  </div>
  <p style="font-size: 14px; color: #666;">If you didn't request this, please ignore this email.</p>
  <p style="font-size: 14px; color: #666;">Or copy and paste this link in your browser:<br>{{.Link}}</p>
</div>`))

	passwordResetTemplate = template.Must(template.New("password_reset").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #e0e0e0;">
  <h2 style="color: #2563eb;">Password Reset</h2>
  <p style="font-size: 16px;">We received a request to reset your password. Click the button below to choose a new one:</p>
  <div style="text-align: center; margin: 25px 0;">
    <a href="{{.Link}}" style="background-color: #2563eb; color: white; padding: 12px 24px; text-decoration: none; border-radius: 4px; font-weight: bold; display: inline-block;">Reset Password</a>
  </div>
  <p style="font-size: 14px; color: #666;">If you didn't request this, you can safely ignore this email. Your password will not change.</p>
  <p style="font-size: 14px; color: #666;">Or copy and paste this link in your browser:<br>{{.Link}}</p>
</div>`))
)

func render(tmpl *template.Template, from, to, subject, link string) (Message, error) {
	if to == "" || link == "" {
		return Message{}, fmt.Errorf("%w: recipient and link are required", ErrInvalidMessage)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct{ Link string }{Link: link}); err != nil {
		return Message{}, fmt.Errorf("render %s: %w", tmpl.Name(), err)
	}

	return Message{
		From:    from,
		To:      to,
		Subject: subject,
		HTML:    buf.String(),
	}, nil
}

// bytes renders msg as an RFC 5322 message with CRLF line endings.
func (m Message) bytes(messageID string, date time.Time) []byte {
	var buf bytes.Buffer

	header := func(k, v string) {
		buf.WriteString(k)
		buf.WriteString(": ")
		buf.WriteString(v)
		buf.WriteString("\r\n")
	}

	header("From", m.From)
	header("To", m.To)
	header("Subject", mime.QEncoding.Encode("utf-8", m.Subject))
	header("Date", date.Format(time.RFC1123Z))
	header("Message-ID", messageID)
	header("MIME-Version", "1.0")
	header("Content-Type", `text/html; charset="utf-8"`)
	header("Content-Transfer-Encoding", "8bit")
	buf.WriteString("\r\n")
	buf.WriteString(strings.ReplaceAll(strings.ReplaceAll(m.HTML, "\r\n", "\n"), "\n", "\r\n"))
	buf.WriteString("\r\n")

	return buf.Bytes()
}
