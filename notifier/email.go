package notifier

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"os"
	"time"

	gomail "gopkg.in/mail.v2"

	"watchlog/annotations"
)

// EmailNotifier sends library digest emails
type EmailNotifier struct {
	smtpHost       string
	smtpPort       int
	senderEmail    string
	senderPass     string
	recipientEmail string
	htmlTemplate   *template.Template
}

// EmailConfig contains configuration for email notifications
type EmailConfig struct {
	SMTPHost       string
	SMTPPort       int
	SenderEmail    string
	SenderPassword string
	RecipientEmail string
}

// NewEmailNotifier creates a new email notifier
func NewEmailNotifier(config EmailConfig) (*EmailNotifier, error) {
	// Initialize HTML template for digest emails
	tmpl, err := template.New("digest").Parse(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Watchlog - Library Digest</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 800px; margin: 0 auto; }
        h1 { color: #e50914; }
        h2 { color: #0071c5; margin-top: 30px; }
        table { width: 100%; border-collapse: collapse; margin-bottom: 20px; }
        th { background-color: #f4f4f4; text-align: left; padding: 10px; }
        td { padding: 10px; border-bottom: 1px solid #ddd; }
        .movie { background-color: #fff3e0; }
        .series { background-color: #e3f2fd; }
        .footer { font-size: 12px; color: #666; margin-top: 50px; text-align: center; }
        .count { font-weight: bold; color: #e50914; }
    </style>
</head>
<body>
    <h1>Watchlog - Library Digest</h1>
    <p>Your library as of {{.Date}}.</p>

    <p>Annotated titles: <span class="count">{{.TotalCount}}</span> ({{len .Movies}} movies, {{len .Series}} series)</p>

    {{if .Movies}}
    <h2>Movies ({{len .Movies}})</h2>
    <table>
        <tr>
            <th>Title</th>
            <th>Your Rating</th>
            <th>Note</th>
        </tr>
        {{range .Movies}}
        <tr class="movie">
            <td>{{.Movie.Title}}</td>
            <td>{{.UserRating}}/10</td>
            <td>{{.Note}}</td>
        </tr>
        {{end}}
    </table>
    {{end}}

    {{if .Series}}
    <h2>Series ({{len .Series}})</h2>
    <table>
        <tr>
            <th>Name</th>
            <th>Your Rating</th>
            <th>Seasons Noted</th>
            <th>Note</th>
        </tr>
        {{range .Series}}
        <tr class="series">
            <td>{{.Series.Name}}</td>
            <td>{{.UserRating}}/10</td>
            <td>{{len .SeasonNotes}}</td>
            <td>{{.Note}}</td>
        </tr>
        {{end}}
    </table>
    {{end}}

    <div class="footer">
        <p>This is an automated email from Watchlog. Please do not reply.</p>
    </div>
</body>
</html>
`)
	if err != nil {
		return nil, fmt.Errorf("failed to parse email template: %v", err)
	}

	return &EmailNotifier{
		smtpHost:       config.SMTPHost,
		smtpPort:       config.SMTPPort,
		senderEmail:    config.SenderEmail,
		senderPass:     config.SenderPassword,
		recipientEmail: config.RecipientEmail,
		htmlTemplate:   tmpl,
	}, nil
}

// GetEmailConfigFromEnv loads email configuration from environment variables
func GetEmailConfigFromEnv() EmailConfig {
	// Parse SMTP port with default value of 587 if not specified or invalid
	smtpPort := 587
	if portStr := os.Getenv("EMAIL_SMTP_PORT"); portStr != "" {
		if p, err := fmt.Sscanf(portStr, "%d", &smtpPort); err != nil || p != 1 {
			log.Printf("Invalid SMTP port '%s', using default 587", portStr)
			smtpPort = 587
		}
	}

	return EmailConfig{
		SMTPHost:       os.Getenv("EMAIL_SMTP_HOST"),
		SMTPPort:       smtpPort,
		SenderEmail:    os.Getenv("EMAIL_SENDER"),
		SenderPassword: os.Getenv("EMAIL_PASSWORD"),
		RecipientEmail: os.Getenv("EMAIL_RECIPIENT"),
	}
}

// SendDigest sends an email summarizing the annotation collection
func (n *EmailNotifier) SendDigest(c annotations.Collection) error {
	total := len(c.Movies) + len(c.Series)
	if total == 0 {
		log.Println("Library is empty, skipping digest")
		return nil
	}

	if n.recipientEmail == "" {
		log.Println("No recipient email configured, skipping digest")
		return nil
	}

	// Prepare template data
	data := struct {
		Date       string
		TotalCount int
		Movies     []annotations.UserMovie
		Series     []annotations.UserSeries
	}{
		Date:       time.Now().Format("January 2, 2006"),
		TotalCount: total,
		Movies:     c.Movies,
		Series:     c.Series,
	}

	// Render email template
	var emailBody bytes.Buffer
	if err := n.htmlTemplate.Execute(&emailBody, data); err != nil {
		return fmt.Errorf("failed to render email template: %v", err)
	}

	// Create a new message using gomail
	m := gomail.NewMessage()

	m.SetHeader("From", n.senderEmail)
	m.SetHeader("To", n.recipientEmail)
	m.SetHeader("Subject", fmt.Sprintf("Watchlog Digest: %d Titles (%d Movies, %d Series)",
		total, len(c.Movies), len(c.Series)))

	// Set both plain text and HTML versions
	plainText := fmt.Sprintf(
		"Watchlog Library Digest\n\n"+
			"Your library as of %s.\n"+
			"Annotated titles: %d (%d movies, %d series)\n\n"+
			"This is an automated email from Watchlog. Please do not reply.",
		data.Date, total, len(c.Movies), len(c.Series))

	m.SetBody("text/plain", plainText)
	m.AddAlternative("text/html", emailBody.String())

	d := gomail.NewDialer(n.smtpHost, n.smtpPort, "api", n.senderPass)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}

	log.Printf("Digest email sent to %s with %d titles", n.recipientEmail, total)
	return nil
}
