package mailer

import (
	"carhive/src/lib"
	"log"
)

// NewMailerMessage sends asynchronously; booking settlement must never block
// or fail on a mail delivery problem.
func NewMailerMessage(input *lib.SendMailInput) {
	go func() {
		if err := lib.SendMail(input); err != nil {
			log.Printf("[mailer] Error sending message to %v: %s\n", input.To, err.Error())
		}
	}()
}
