package service

import (
	"context"
	"sort"
	"time"

	"lessonbook/internal/model"
)

// In-memory моки хранилища. GetByID отдаёт копию, как это делает
// реальная БД: изменения видны только после Update.

type mockUserRepo struct {
	seq   int64
	users map[int64]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[int64]*model.User)}
}

func (r *mockUserRepo) Create(_ context.Context, user *model.User) error {
	r.seq++
	user.ID = r.seq
	user.CreatedAt = time.Now()
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *mockUserRepo) GetByID(_ context.Context, id int64) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (r *mockUserRepo) GetBySectionAndUsername(_ context.Context, section, username string) (*model.User, error) {
	for _, user := range r.users {
		if user.Section == section && user.Username == username {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

type mockAppointmentRepo struct {
	seq          int64
	appointments map[int64]*model.Appointment
	updateErr    error // Позволяет сымитировать отказ хранилища
}

func newMockAppointmentRepo() *mockAppointmentRepo {
	return &mockAppointmentRepo{appointments: make(map[int64]*model.Appointment)}
}

func (r *mockAppointmentRepo) Create(_ context.Context, appt *model.Appointment) error {
	r.seq++
	appt.ID = r.seq
	appt.CreatedAt = time.Now()
	clone := *appt
	r.appointments[appt.ID] = &clone
	return nil
}

func (r *mockAppointmentRepo) GetByID(_ context.Context, id int64) (*model.Appointment, error) {
	appt, ok := r.appointments[id]
	if !ok {
		return nil, nil
	}
	clone := *appt
	return &clone, nil
}

func (r *mockAppointmentRepo) Update(_ context.Context, appt *model.Appointment) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	clone := *appt
	r.appointments[appt.ID] = &clone
	return nil
}

func (r *mockAppointmentRepo) ExistsAtTime(_ context.Context, studentID int64, startTime time.Time) (bool, error) {
	for _, appt := range r.appointments {
		if appt.StudentID == studentID && appt.StartTime.Equal(startTime) {
			return true, nil
		}
	}
	return false, nil
}

func (r *mockAppointmentRepo) ListByStudent(_ context.Context, studentID int64) ([]*model.Appointment, error) {
	return r.list(func(a *model.Appointment) bool { return a.StudentID == studentID }), nil
}

func (r *mockAppointmentRepo) ListByTeacher(_ context.Context, teacherID int64) ([]*model.Appointment, error) {
	return r.list(func(a *model.Appointment) bool {
		return a.TeacherID != nil && *a.TeacherID == teacherID
	}), nil
}

func (r *mockAppointmentRepo) ListByTeacherBetween(_ context.Context, teacherID int64, from, to time.Time) ([]*model.Appointment, error) {
	return r.list(func(a *model.Appointment) bool {
		return a.TeacherID != nil && *a.TeacherID == teacherID && inWindow(a.StartTime, from, to)
	}), nil
}

func (r *mockAppointmentRepo) ListAll(_ context.Context) ([]*model.Appointment, error) {
	return r.list(func(*model.Appointment) bool { return true }), nil
}

func (r *mockAppointmentRepo) ListAllBetween(_ context.Context, from, to time.Time) ([]*model.Appointment, error) {
	return r.list(func(a *model.Appointment) bool { return inWindow(a.StartTime, from, to) }), nil
}

func (r *mockAppointmentRepo) list(match func(*model.Appointment) bool) []*model.Appointment {
	var result []*model.Appointment
	for _, appt := range r.appointments {
		if match(appt) {
			clone := *appt
			result = append(result, &clone)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].StartTime.Equal(result[j].StartTime) {
			return result[i].StartTime.After(result[j].StartTime)
		}
		return result[i].ID < result[j].ID
	})
	return result
}

func inWindow(t, from, to time.Time) bool {
	return !t.Before(from) && t.Before(to)
}

type mockAvailabilityRepo struct {
	seq            int64
	availabilities map[int64]*model.Availability
}

func newMockAvailabilityRepo() *mockAvailabilityRepo {
	return &mockAvailabilityRepo{availabilities: make(map[int64]*model.Availability)}
}

func (r *mockAvailabilityRepo) Create(_ context.Context, av *model.Availability) error {
	r.seq++
	av.ID = r.seq
	av.CreatedAt = time.Now()
	clone := *av
	r.availabilities[av.ID] = &clone
	return nil
}

func (r *mockAvailabilityRepo) GetByID(_ context.Context, id int64) (*model.Availability, error) {
	av, ok := r.availabilities[id]
	if !ok {
		return nil, nil
	}
	clone := *av
	return &clone, nil
}

func (r *mockAvailabilityRepo) Delete(_ context.Context, id int64) error {
	delete(r.availabilities, id)
	return nil
}

func (r *mockAvailabilityRepo) ListByTeacher(_ context.Context, teacherID int64) ([]*model.Availability, error) {
	return r.list(func(a *model.Availability) bool { return a.TeacherID == teacherID }), nil
}

func (r *mockAvailabilityRepo) ListBetween(_ context.Context, from, to time.Time) ([]*model.Availability, error) {
	return r.list(func(a *model.Availability) bool { return inWindow(a.StartTime, from, to) }), nil
}

func (r *mockAvailabilityRepo) list(match func(*model.Availability) bool) []*model.Availability {
	var result []*model.Availability
	for _, av := range r.availabilities {
		if match(av) {
			clone := *av
			result = append(result, &clone)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].StartTime.Equal(result[j].StartTime) {
			return result[i].StartTime.After(result[j].StartTime)
		}
		return result[i].ID < result[j].ID
	})
	return result
}

type mockQuestionnaireRepo struct {
	seq       int64
	responses map[int64]*model.QuestionnaireResponse
}

func newMockQuestionnaireRepo() *mockQuestionnaireRepo {
	return &mockQuestionnaireRepo{responses: make(map[int64]*model.QuestionnaireResponse)}
}

func (r *mockQuestionnaireRepo) Create(_ context.Context, qr *model.QuestionnaireResponse) error {
	r.seq++
	qr.ID = r.seq
	qr.SubmittedAt = time.Now()
	clone := *qr
	r.responses[qr.ID] = &clone
	return nil
}

func (r *mockQuestionnaireRepo) ListByAppointment(_ context.Context, appointmentID int64) ([]*model.QuestionnaireResponse, error) {
	var result []*model.QuestionnaireResponse
	for _, qr := range r.responses {
		if qr.AppointmentID == appointmentID {
			clone := *qr
			result = append(result, &clone)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

type mockAssignmentRepo struct {
	seq         int64
	assignments map[int64]*model.IndependentAssignment
}

func newMockAssignmentRepo() *mockAssignmentRepo {
	return &mockAssignmentRepo{assignments: make(map[int64]*model.IndependentAssignment)}
}

func (r *mockAssignmentRepo) Create(_ context.Context, ia *model.IndependentAssignment) error {
	r.seq++
	ia.ID = r.seq
	ia.CreatedAt = time.Now()
	clone := *ia
	r.assignments[ia.ID] = &clone
	return nil
}

func (r *mockAssignmentRepo) ListByStudent(_ context.Context, studentID int64) ([]*model.IndependentAssignment, error) {
	var result []*model.IndependentAssignment
	for _, ia := range r.assignments {
		if ia.StudentID == studentID {
			clone := *ia
			result = append(result, &clone)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}
