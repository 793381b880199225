package dto

import "github.com/salonhub/salon-backend/internal/models"

type AppointmentListDTO struct {
	ID              uint   `json:"id"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	Status          string `json:"status"`
	QueueNumber     int    `json:"queue_number"`
	CustomerName    string `json:"customer_name"`
	ServiceName     string `json:"service_name"`
}

// FromAppointment flattens an appointment with its preloaded relations into
// a listing row. Guests appear under their stored name.
func FromAppointment(ap models.Appointment) AppointmentListDTO {
	row := AppointmentListDTO{
		ID:              ap.ID,
		AppointmentDate: ap.AppointmentDate,
		AppointmentTime: ap.AppointmentTime,
		Status:          ap.Status,
		QueueNumber:     ap.QueueNumber,
		CustomerName:    ap.GuestName,
	}

	if ap.User != nil {
		row.CustomerName = ap.User.FirstName + " " + ap.User.LastName
	}
	if ap.Service != nil {
		row.ServiceName = ap.Service.Name
	}
	return row
}

func FromAppointments(aps []models.Appointment) []AppointmentListDTO {
	rows := make([]AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		rows = append(rows, FromAppointment(ap))
	}
	return rows
}
