package service

import (
	"context"
	"fmt"

	"sharelah-backend/internal/logger"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) SendLateRentalReminder(ctx context.Context, email, name, stallName string, daysLate int) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Your umbrella rental is overdue")

	body := fmt.Sprintf("Hello %s,\n\nThe umbrella you borrowed from %s is now %d business days overdue. Please return it to any ShareLah stall, or it will be treated as a purchase.\n\nBest regards,\nThe ShareLah Team", name, stallName, daysLate)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	logger.ExternalServiceCall("smtp", "SendLateRentalReminder", "to", email)
	if err := d.DialAndSend(m); err != nil {
		logger.ExternalServiceResult("smtp", "SendLateRentalReminder", err)
		return fmt.Errorf("failed to send late rental reminder: %w", err)
	}
	logger.ExternalServiceResult("smtp", "SendLateRentalReminder", nil)
	return nil
}
