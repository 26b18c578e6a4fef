package notification

import (
	"context"
	"fmt"

	doctorRepo "clinicore/database/repository/doctor"
	patientRepo "clinicore/database/repository/patient"
	"clinicore/utils"

	"firebase.google.com/go/v4/messaging"
)

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	SendPatientPushNotification(ctx context.Context, patientID, title, body string, data map[string]string) error
	SendDoctorPushNotification(ctx context.Context, doctorID, title, body string, data map[string]string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Patients patientRepo.PatientRepository
	Doctors  doctorRepo.DoctorRepository
}

func NewDefaultNotificationService(
	patients patientRepo.PatientRepository,
	doctors doctorRepo.DoctorRepository,
) (*DefaultNotificationService, error) {
	if patients == nil || doctors == nil {
		return nil, fmt.Errorf("notification service initialization error: patient or doctor repository is nil")
	}
	return &DefaultNotificationService{
		Patients: patients,
		Doctors:  doctors,
	}, nil
}

// SendPatientPushNotification looks up a patient's FCM token and sends a push.
func (s *DefaultNotificationService) SendPatientPushNotification(
	ctx context.Context,
	patientID, title, body string,
	data map[string]string,
) error {
	p, err := s.Patients.GetByID(ctx, patientID)
	if err != nil {
		return fmt.Errorf("SendPatientPushNotification: could not find patient %s: %w", patientID, err)
	}
	token := p.FCMToken
	if token == "" {
		return fmt.Errorf("SendPatientPushNotification: patient %s has no FCM token", patientID)
	}

	if data == nil {
		data = map[string]string{}
	}
	if _, ok := data["role"]; !ok {
		data["role"] = "patient"
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("SendPatientPushNotification: failed to send FCM message: %w", err)
	}
	return nil
}

// SendDoctorPushNotification sends a high-priority push to a doctor's device.
func (s *DefaultNotificationService) SendDoctorPushNotification(
	ctx context.Context,
	doctorID, title, body string,
	data map[string]string,
) error {
	d, err := s.Doctors.GetByID(ctx, doctorID)
	if err != nil {
		return fmt.Errorf("SendDoctorPushNotification: could not find doctor %s: %w", doctorID, err)
	}
	token := d.FCMToken
	if token == "" {
		return fmt.Errorf("SendDoctorPushNotification: doctor %s has no FCM token", doctorID)
	}

	if data == nil {
		data = map[string]string{}
	}
	if _, ok := data["role"]; !ok {
		data["role"] = "doctor"
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: "high_priority",
				Sound:     "default",
			},
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority":  "10",
				"apns-push-type": "alert",
			},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound: "default",
				},
			},
		},
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("SendDoctorPushNotification: failed to send FCM message: %w", err)
	}
	return nil
}
