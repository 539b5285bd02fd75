package backend

import (
	"time"

	"coursedeck/internal/entity"
	"coursedeck/internal/model"
)

// parseTime tolerates a malformed backend timestamp as the zero time
// rather than failing the whole collection.
func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

func toUserEntity(m model.User) entity.User {
	return entity.User{
		ID:         m.ID,
		FirstName:  m.FirstName,
		LastName:   m.LastName,
		Email:      m.Email,
		Role:       entity.Role(m.Role),
		ClassLevel: m.ClassLevel,
		IsActive:   m.IsActive,
		JoinedAt:   parseTime(m.JoinedAt),
	}
}

func toUserEntities(ms []model.User) []entity.User {
	out := make([]entity.User, len(ms))
	for i, m := range ms {
		out[i] = toUserEntity(m)
	}
	return out
}

func toCourseEntity(m model.Course) entity.Course {
	return entity.Course{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		InstructorID: m.InstructorID,
		Price:        m.Price,
		Category:     m.Category,
		Published:    m.Published,
		CreatedAt:    parseTime(m.CreatedAt),
		UpdatedAt:    parseTime(m.UpdatedAt),
	}
}

func toCourseEntities(ms []model.Course) []entity.Course {
	out := make([]entity.Course, len(ms))
	for i, m := range ms {
		out[i] = toCourseEntity(m)
	}
	return out
}

func toEnrollmentEntities(ms []model.Enrollment) []entity.Enrollment {
	out := make([]entity.Enrollment, len(ms))
	for i, m := range ms {
		out[i] = entity.Enrollment{
			UserID:        m.UserID,
			CourseID:      m.CourseID,
			Progress:      m.Progress,
			PaymentStatus: entity.PaymentStatus(m.PaymentStatus),
			EnrolledAt:    parseTime(m.EnrolledAt),
		}
	}
	return out
}

func toSubmissionEntity(m *model.Submission) *entity.Submission {
	if m == nil {
		return nil
	}
	sub := &entity.Submission{
		ID:           m.ID,
		AssignmentID: m.AssignmentID,
		UserID:       m.UserID,
		Status:       entity.SubmissionStatus(m.Status),
		Grade:        m.Grade,
		Feedback:     m.Feedback,
		SubmittedAt:  parseTime(m.SubmittedAt),
	}
	if m.GradedAt != nil {
		t := parseTime(*m.GradedAt)
		sub.GradedAt = &t
	}
	return sub
}

func toAssignmentEntity(m model.Assignment) entity.Assignment {
	return entity.Assignment{
		ID:          m.ID,
		CourseID:    m.CourseID,
		Title:       m.Title,
		DueAt:       parseTime(m.DueAt),
		TotalPoints: m.TotalPoints,
		Submission:  toSubmissionEntity(m.Submission),
	}
}

func toAssignmentEntities(ms []model.Assignment) []entity.Assignment {
	out := make([]entity.Assignment, len(ms))
	for i, m := range ms {
		out[i] = toAssignmentEntity(m)
	}
	return out
}

func toSubmissionEntities(ms []model.Submission) []entity.Submission {
	out := make([]entity.Submission, len(ms))
	for i := range ms {
		out[i] = *toSubmissionEntity(&ms[i])
	}
	return out
}

func toPaymentEntities(ms []model.Payment) []entity.Payment {
	out := make([]entity.Payment, len(ms))
	for i, m := range ms {
		out[i] = entity.Payment{
			ID:            m.ID,
			UserID:        m.UserID,
			CourseID:      m.CourseID,
			Amount:        m.Amount,
			Currency:      m.Currency,
			Status:        entity.PaymentStatus(m.Status),
			TransactionID: m.TransactionID,
			CreatedAt:     parseTime(m.CreatedAt),
		}
	}
	return out
}

func toNotificationEntities(ms []model.Notification) []entity.Notification {
	out := make([]entity.Notification, len(ms))
	for i, m := range ms {
		out[i] = entity.Notification{
			ID:        m.ID,
			UserID:    m.UserID,
			Title:     m.Title,
			Message:   m.Message,
			IsRead:    m.IsRead,
			CreatedAt: parseTime(m.CreatedAt),
		}
	}
	return out
}
