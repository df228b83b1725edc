package notification

import (
	"context"
	"fmt"

	clinicRepo "vetbuddy/database/repository/clinic"
	"vetbuddy/utils"

	"firebase.google.com/go/v4/messaging"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	SendClinicPushNotification(ctx context.Context, clinicID, title, body string, data map[string]string) error
}

// PushSender is the part of the FCM client used here; *messaging.Client satisfies it.
type PushSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Clinics clinicRepo.ClinicRepository
	// Sender may be nil when Firebase is not configured; pushes are then skipped.
	Sender PushSender
}

// SendClinicPushNotification looks up a clinic's FCM token and sends a push.
func (s *DefaultNotificationService) SendClinicPushNotification(
	ctx context.Context,
	clinicID, title, body string,
	data map[string]string,
) error {
	logger := utils.GetLogger()
	if s.Sender == nil {
		logger.Debug("push notifications disabled, skipping", zap.String("clinicID", clinicID))
		return nil
	}

	c, err := s.Clinics.GetByIDWithProjection(ctx, clinicID, bson.M{"id": 1, "role": 1, "fcmToken": 1})
	if err != nil {
		return fmt.Errorf("SendClinicPushNotification: could not find clinic %s: %w", clinicID, err)
	}
	if c.FCMToken == "" {
		return fmt.Errorf("SendClinicPushNotification: clinic %s has no FCM token", clinicID)
	}

	payload := map[string]string{"role": "clinic"}
	for k, v := range data {
		payload[k] = v
	}

	msg := &messaging.Message{
		Token: c.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: payload,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	}

	response, err := s.Sender.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("SendClinicPushNotification: failed to send FCM message: %w", err)
	}

	logger.Info("clinic push sent", zap.String("clinicID", clinicID), zap.String("messageID", response))
	return nil
}
