package email

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/theofylaktos99/gym-app/internal/booking"
	"github.com/theofylaktos99/gym-app/internal/logger"
	"github.com/theofylaktos99/gym-app/internal/metrics"
)

const (
	queueKey  = "emails"
	failedKey = "emails:failed"

	maxTries = 3
)

type Job struct {
	To      string    `json:"to"`
	Name    string    `json:"name"`
	Type    string    `json:"type"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

// Service queues emails in Redis and drains the queue over SMTP from a
// worker goroutine.
type Service struct {
	redis    *redis.Client
	from     string
	fromName string
	smtpHost string
	smtpPort string
	smtpUser string
	smtpPass string
}

func New(fromEmail, fromName, smtpHost, smtpPort, smtpUser, smtpPass, redisAddr string) *Service {
	return &Service{
		redis: redis.NewClient(&redis.Options{
			Addr: redisAddr,
		}),
		from:     fromEmail,
		fromName: fromName,
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		smtpUser: smtpUser,
		smtpPass: smtpPass,
	}
}

func (s *Service) Send(ctx context.Context, to, name, emailType, subject, body string) error {
	job := Job{
		To:      to,
		Name:    name,
		Type:    emailType,
		Subject: subject,
		Body:    body,
		Tries:   0,
		Created: time.Now(),
	}

	data, err := json.Marshal(job)
	if err != nil {
		logger.Errorf("Failed to marshal email job: %v", err)
		return err
	}

	if err := s.redis.LPush(ctx, queueKey, data).Err(); err != nil {
		logger.Errorf("Failed to queue email to %s: %v", to, err)
		metrics.RecordEmail(emailType, "queue_error")
		return err
	}

	logger.Infof("Email queued: %s to %s", subject, to)
	return nil
}

func (s *Service) Start(ctx context.Context) {
	logger.Info("Email worker started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Email worker stopped")
			return
		default:
			s.processNext(ctx)
		}
	}
}

func (s *Service) processNext(ctx context.Context) {
	result, err := s.redis.BRPop(ctx, 2*time.Second, queueKey).Result()
	if err != nil {
		return
	}

	metrics.EmailQueueLength.Set(float64(s.QueueLength(ctx)))

	var job Job
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		logger.Errorf("Bad email data: %v", err)
		return
	}

	job.Tries++
	logger.Infof("Sending email to %s (attempt %d)", job.To, job.Tries)
	if err := s.sendNow(job); err != nil {
		logger.Errorf("Failed to send email to %s: %v", job.To, err)

		if job.Tries < maxTries {
			time.Sleep(5 * time.Second)
			data, _ := json.Marshal(job)
			s.redis.LPush(context.Background(), queueKey, data)
			logger.Infof("Retrying email to %s (attempt %d)", job.To, job.Tries+1)
		} else {
			logger.Errorf("Email to %s failed after %d attempts", job.To, maxTries)
			metrics.RecordEmail(job.Type, "failed")
			s.saveFailed(job, err)
		}
		return
	}

	metrics.RecordEmail(job.Type, "sent")
	logger.Infof("Email sent successfully to %s", job.To)
}

func (s *Service) sendNow(job Job) error {
	message := fmt.Sprintf("From: %s <%s>\r\n", s.fromName, s.from)
	message += fmt.Sprintf("To: %s\r\n", job.To)
	message += fmt.Sprintf("Subject: %s\r\n", job.Subject)
	message += "\r\n" + job.Body

	var auth smtp.Auth
	if s.smtpUser != "" && s.smtpPass != "" {
		auth = smtp.PlainAuth("", s.smtpUser, s.smtpPass, s.smtpHost)
	}

	addr := s.smtpHost + ":" + s.smtpPort
	return smtp.SendMail(addr, auth, s.from, []string{job.To}, []byte(message))
}

func (s *Service) saveFailed(job Job, err error) {
	failed := map[string]interface{}{
		"job":   job,
		"error": err.Error(),
		"time":  time.Now(),
	}
	data, _ := json.Marshal(failed)
	s.redis.LPush(context.Background(), failedKey, data)
	logger.Errorf("Email moved to failed queue: %s", job.To)
}

func (s *Service) QueueLength(ctx context.Context) int64 {
	length, _ := s.redis.LLen(ctx, queueKey).Result()
	return length
}

func (s *Service) Close() error {
	return s.redis.Close()
}

// BookingConfirmed implements booking.Notifier. Queue errors are logged
// inside Send and never surface to the booking flow.
func (s *Service) BookingConfirmed(email, username string, b *booking.Booking, areaName string) {
	subject := "Booking Confirmed - " + areaName
	body := fmt.Sprintf(`Hi %s,

Your booking is confirmed!

Area: %s
Date: %s
Time: %s
Duration: %d minutes

See you at the gym!

- The Gym Team`, username, areaName, b.Date(), b.StartTime, b.DurationMinutes)

	_ = s.Send(context.Background(), email, username, "booking_confirmation", subject, body)
}

// BookingCancelled implements booking.Notifier.
func (s *Service) BookingCancelled(email, username string, b *booking.Booking, areaName string) {
	subject := "Booking Cancelled - " + areaName
	body := fmt.Sprintf(`Hi %s,

Your booking has been cancelled:

Area: %s
Date: %s
Time: %s

- The Gym Team`, username, areaName, b.Date(), b.StartTime)

	_ = s.Send(context.Background(), email, username, "booking_cancellation", subject, body)
}

// SendReminder notifies a member about a booking scheduled for tomorrow.
func (s *Service) SendReminder(ctx context.Context, email, username, areaName, date, startTime string) error {
	subject := "Reminder: " + areaName + " Tomorrow"
	body := fmt.Sprintf(`Hi %s,

This is a reminder about your booking tomorrow:

Area: %s
Date: %s
Time: %s

See you soon!

- The Gym Team`, username, areaName, date, startTime)

	return s.Send(ctx, email, username, "booking_reminder", subject, body)
}
