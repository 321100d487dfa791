package scheduler

import (
	"context"
	"fmt"
	"log"

	"watchlog/notifier"
	"watchlog/storage"
)

// DigestJob loads the annotation collection and emails a library digest.
type DigestJob struct {
	store         *storage.FileStore
	emailNotifier *notifier.EmailNotifier
	sendEmails    bool
}

// NewDigestJob creates a new digest job. Email delivery is enabled only
// when SMTP host and recipient are configured in the environment.
func NewDigestJob(store *storage.FileStore) *DigestJob {
	emailConfig := notifier.GetEmailConfigFromEnv()
	var emailNotifier *notifier.EmailNotifier
	sendEmails := false

	if emailConfig.SMTPHost != "" && emailConfig.RecipientEmail != "" {
		var err error
		emailNotifier, err = notifier.NewEmailNotifier(emailConfig)
		if err != nil {
			log.Printf("Failed to create email notifier: %v", err)
		} else {
			sendEmails = true
			log.Printf("Digest emails will be sent to: %s", emailConfig.RecipientEmail)
		}
	} else {
		log.Println("Digest emails disabled: missing configuration")
	}

	return &DigestJob{
		store:         store,
		emailNotifier: emailNotifier,
		sendEmails:    sendEmails,
	}
}

// Name returns the name of the job
func (j *DigestJob) Name() string {
	return "library_digest"
}

// Run executes the job
func (j *DigestJob) Run(ctx context.Context) error {
	if !j.sendEmails || j.emailNotifier == nil {
		log.Println("Digest emails disabled, nothing to do")
		return nil
	}

	collection, err := j.store.Load()
	if err != nil {
		return fmt.Errorf("failed to load collection for digest: %v", err)
	}

	if err := j.emailNotifier.SendDigest(collection); err != nil {
		return fmt.Errorf("failed to send digest: %v", err)
	}

	return nil
}
