package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
)

var otpTemplate = template.Must(template.New("otp").Parse(`<div style="font-family: Helvetica, Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1>{{.Company}}</h1>
  <p>Hello,</p>
  <p>{{.Intro}} Enter the code below to proceed:</p>
  <p style="font-size: 32px; font-weight: 600; letter-spacing: 6px;">{{.Code}}</p>
  <p>This code is valid for <strong>{{.Minutes}} minutes</strong>.</p>
  <p>Didn't request this? Please ignore this email. Your account is safe.</p>
  <p style="font-size: 13px;">&copy; {{.Year}} {{.Company}}</p>
</div>`))

// Kinds of OTP email.
const (
	KindVerification  = "verification"
	KindPasswordReset = "password_reset"
)

// OTPEmail renders the message carrying a one-time code.
func OTPEmail(company, to, kind, code string, ttl time.Duration, now time.Time) (Message, error) {
	var subject, intro string
	switch kind {
	case KindVerification:
		subject = "Verify your email"
		intro = "You requested to verify your account on " + company + "."
	case KindPasswordReset:
		subject = company + " - Password Reset OTP"
		intro = "You requested to reset your password on " + company + "."
	default:
		return Message{}, fmt.Errorf("unknown email kind %q", kind)
	}

	var body bytes.Buffer
	err := otpTemplate.Execute(&body, map[string]any{
		"Company": company,
		"Intro":   intro,
		"Code":    code,
		"Minutes": int(ttl.Minutes()),
		"Year":    now.Year(),
	})
	if err != nil {
		return Message{}, fmt.Errorf("render otp email: %w", err)
	}

	return Message{To: to, Subject: subject, Body: body.String()}, nil
}
