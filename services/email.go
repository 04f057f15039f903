package services

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"path"
	"strings"
	texttemplate "text/template"

	"binarybyte_site/config"

	"github.com/resend/resend-go/v2"
)

//go:embed emails/*
var emailTemplates embed.FS

// Email represents an email message
type Email struct {
	To       []string
	ReplyTo  string
	Subject  string
	HTMLBody string
	TextBody string
}

// sendViaResend is swapped in tests to avoid calling the Resend API
var sendViaResend = func(apiKey string, params *resend.SendEmailRequest) (string, error) {
	client := resend.NewClient(apiKey)
	sent, err := client.Emails.Send(params)
	if err != nil {
		return "", err
	}
	return sent.Id, nil
}

// loadTemplate renders templateName_lang.html/.txt from the embedded emails directory,
// falling back to templateName.html/.txt (English) when no localized file exists.
func loadTemplate(templateName string, lang string, data interface{}) (html string, text string, err error) {
	return loadTemplateFS(emailTemplates, "emails", templateName, lang, data)
}

func loadTemplateFS(fsys fs.FS, basePath, templateName, lang string, data interface{}) (string, string, error) {
	read := func(ext string) (string, []byte, error) {
		// Try localized first
		p := path.Join(basePath, fmt.Sprintf("%s_%s%s", templateName, lang, ext))
		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			// Fallback to base template
			p = path.Join(basePath, templateName+ext)
			content, err = fs.ReadFile(fsys, p)
			if err != nil {
				return "", nil, fmt.Errorf("failed to read template %s: %w", p, err)
			}
		}
		return p, content, nil
	}

	htmlPath, htmlSrc, err := read(".html")
	if err != nil {
		return "", "", err
	}
	htmlTmpl, err := template.New(path.Base(htmlPath)).Parse(string(htmlSrc))
	if err != nil {
		return "", "", fmt.Errorf("failed to parse template %s: %w", htmlPath, err)
	}
	var htmlBuf bytes.Buffer
	if err := htmlTmpl.Execute(&htmlBuf, data); err != nil {
		return "", "", fmt.Errorf("failed to execute template %s: %w", htmlPath, err)
	}

	textPath, textSrc, err := read(".txt")
	if err != nil {
		return "", "", err
	}
	textTmpl, err := texttemplate.New(path.Base(textPath)).Parse(string(textSrc))
	if err != nil {
		return "", "", fmt.Errorf("failed to parse template %s: %w", textPath, err)
	}
	var textBuf bytes.Buffer
	if err := textTmpl.Execute(&textBuf, data); err != nil {
		return "", "", fmt.Errorf("failed to execute template %s: %w", textPath, err)
	}

	return htmlBuf.String(), textBuf.String(), nil
}

// SendEmail sends an email using Resend API and returns the provider message ID
func SendEmail(cfg *config.Config, email *Email) (string, error) {
	// In test mode, log the email instead of sending
	if cfg.EmailTestMode {
		logEmailToConsole(email)
		log.Printf("Email logged successfully (test mode - not actually sent)")
		return "", nil
	}

	// Validate configuration
	if cfg.ResendAPIKey == "" {
		return "", fmt.Errorf("RESEND_API_KEY not configured")
	}

	// Build the from address
	fromAddress := fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom)

	params := &resend.SendEmailRequest{
		From:    fromAddress,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTMLBody,
		Text:    email.TextBody,
	}
	if email.ReplyTo != "" {
		params.ReplyTo = email.ReplyTo
	}

	// Validate we have at least one body
	if params.Html == "" && params.Text == "" {
		return "", fmt.Errorf("email must have either HTMLBody or TextBody")
	}

	id, err := sendViaResend(cfg.ResendAPIKey, params)
	if err != nil {
		return "", fmt.Errorf("failed to send email via Resend: %w", err)
	}

	log.Printf("Email sent successfully via Resend (ID: %s) to: %v", id, email.To)
	return id, nil
}

// logEmailToConsole logs email details to console in test mode
func logEmailToConsole(email *Email) {
	separator := strings.Repeat("=", 80)
	log.Printf("\n%s\nEMAIL (Test Mode - Not Actually Sent)\n%s", separator, separator)
	log.Printf("To: %v", email.To)
	log.Printf("Reply-To: %s", email.ReplyTo)
	log.Printf("Subject: %s", email.Subject)
	log.Printf("\n--- TEXT BODY ---\n%s", email.TextBody)
	log.Printf("\n--- HTML BODY (first 500 chars) ---\n%s...", truncate(email.HTMLBody, 500))
	log.Printf("%s\n", separator)
}

// truncate truncates a string to a maximum length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}
