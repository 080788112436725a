package notify

import (
	"github.com/bagdasarian/taskhub/internal/config"
	"github.com/sirupsen/logrus"
)

// Sender - транспорт уведомлений. С точки зрения ядра отправка
// fire-and-forget: успех или ошибка, без статусов доставки.
type Sender interface {
	Send(recipientEmail, subject, body string) error
}

// NewSender возвращает SMTP-отправителя, если настроен хост,
// иначе отправку в лог (локальная разработка и тесты).
func NewSender(cfg config.SMTPConfig, logger *logrus.Logger) Sender {
	if cfg.Host == "" {
		return NewLogSender(logger)
	}
	return NewSMTPSender(cfg)
}

type logSender struct {
	logger *logrus.Logger
}

func NewLogSender(logger *logrus.Logger) *logSender {
	return &logSender{logger: logger}
}

func (s *logSender) Send(recipientEmail, subject, body string) error {
	s.logger.WithFields(logrus.Fields{
		"recipient": recipientEmail,
		"subject":   subject,
	}).Info(body)
	return nil
}
