// File: services/appointment/appointment_test.go
package appointment

import (
	"context"
	"fmt"
	"testing"
	"time"

	"clinicore/models"
	"clinicore/services/availability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAppointmentRepo struct {
	appts map[string]*models.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appts: make(map[string]*models.Appointment)}
}

func (r *fakeAppointmentRepo) Create(ctx context.Context, a *models.Appointment) error {
	cp := *a
	r.appts[a.ID] = &cp
	return nil
}

func (r *fakeAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	if a, ok := r.appts[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, fmt.Errorf("appointment with id %s not found", id)
}

func (r *fakeAppointmentRepo) GetAll(ctx context.Context, clinicID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appts {
		if a.ClinicID == clinicID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) Update(ctx context.Context, a *models.Appointment) error {
	if _, ok := r.appts[a.ID]; !ok {
		return fmt.Errorf("appointment with id %s not found", a.ID)
	}
	cp := *a
	r.appts[a.ID] = &cp
	return nil
}

func (r *fakeAppointmentRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	a, ok := r.appts[id]
	if !ok {
		return fmt.Errorf("appointment with id %s not found", id)
	}
	for k, v := range fields {
		switch k {
		case "status":
			a.Status = v.(string)
		case "doctor_notes":
			a.DoctorNotes = v.(string)
		case "gmeet_link":
			a.GMeetLink = v.(string)
		case "dateTime":
			a.DateTime = v.(time.Time)
		case "duration":
			a.Duration = v.(int)
		case "symptoms":
			a.Symptoms = v.(string)
		case "notification_status":
			a.NotificationStatus = v.(string)
		}
	}
	return nil
}

func (r *fakeAppointmentRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.appts[id]; !ok {
		return fmt.Errorf("appointment with id %s not found", id)
	}
	delete(r.appts, id)
	return nil
}

func (r *fakeAppointmentRepo) SearchByPatientName(ctx context.Context, clinicID, prefix string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appts {
		if a.ClinicID == clinicID && len(a.PatientName) >= len(prefix) && a.PatientName[:len(prefix)] == prefix {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) GetByDateRange(ctx context.Context, clinicID string, from, to time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appts {
		if a.ClinicID == clinicID && !a.DateTime.Before(from) && a.DateTime.Before(to) {
			out = append(out, *a)
		}
	}
	return out, nil
}

type fakePatientRepo struct {
	patients map[string]*models.Patient
	fields   map[string]map[string]interface{}
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{
		patients: make(map[string]*models.Patient),
		fields:   make(map[string]map[string]interface{}),
	}
}

func (r *fakePatientRepo) Create(ctx context.Context, p *models.Patient) error {
	cp := *p
	r.patients[p.ID] = &cp
	return nil
}

func (r *fakePatientRepo) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	if p, ok := r.patients[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, fmt.Errorf("patient with id %s not found", id)
}

func (r *fakePatientRepo) GetAll(ctx context.Context, clinicID string) ([]models.Patient, error) {
	var out []models.Patient
	for _, p := range r.patients {
		if p.ClinicID == clinicID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePatientRepo) Update(ctx context.Context, p *models.Patient) error {
	cp := *p
	r.patients[p.ID] = &cp
	return nil
}

func (r *fakePatientRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	if _, ok := r.patients[id]; !ok {
		return fmt.Errorf("patient with id %s not found", id)
	}
	r.fields[id] = fields
	return nil
}

func (r *fakePatientRepo) Delete(ctx context.Context, id string) error {
	delete(r.patients, id)
	return nil
}

func (r *fakePatientRepo) CountAll(ctx context.Context, clinicID string) (int64, error) {
	return int64(len(r.patients)), nil
}

// fakeScheduleService serves one canned day for every date.
type fakeScheduleService struct {
	day *models.AvailabilityDay
}

func (f *fakeScheduleService) LoadWeek(ctx context.Context, sctx availability.ScheduleContext, anchor time.Time) (*availability.WeekSchedule, error) {
	return nil, nil
}

func (f *fakeScheduleService) ToggleSlot(ctx context.Context, sctx availability.ScheduleContext, date, slotLabel string) (*models.AvailabilityDay, error) {
	return nil, nil
}

func (f *fakeScheduleService) ToggleDayOff(ctx context.Context, sctx availability.ScheduleContext, date string) (*models.AvailabilityDay, error) {
	return nil, nil
}

func (f *fakeScheduleService) SaveWeek(ctx context.Context, week *availability.WeekSchedule) (*availability.SaveReport, error) {
	return nil, nil
}

func (f *fakeScheduleService) DayAvailability(ctx context.Context, sctx availability.ScheduleContext, date string) (*models.AvailabilityDay, error) {
	return f.day, nil
}

type fakeMeetLinkProvider struct {
	link  string
	calls int
}

func (f *fakeMeetLinkProvider) CreateMeetLink(ctx context.Context, appt *models.Appointment) (string, error) {
	f.calls++
	return f.link, nil
}

type fakeReminderScheduler struct {
	payloads []models.ReminderPayload
}

func (f *fakeReminderScheduler) Schedule(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error {
	f.payloads = append(f.payloads, payload)
	return nil
}

func openDay() *models.AvailabilityDay {
	slots := make([]models.SlotStatus, 0, 16)
	for h := 9; h < 17; h++ {
		slots = append(slots,
			models.SlotStatus{Time: fmt.Sprintf("%02d:00", h), Available: true},
			models.SlotStatus{Time: fmt.Sprintf("%02d:30", h), Available: true},
		)
	}
	return &models.AvailabilityDay{Open: true, Slots: slots}
}

func newTestService(repo *fakeAppointmentRepo, patients *fakePatientRepo, day *models.AvailabilityDay) (*DefaultAppointmentService, *fakeReminderScheduler) {
	reminders := &fakeReminderScheduler{}
	svc := &DefaultAppointmentService{
		Repo:         repo,
		Patients:     patients,
		Availability: &fakeScheduleService{day: day},
		Reminders:    reminders,
		ReminderLead: time.Hour,
	}
	return svc, reminders
}

func futureSlotTime(t *testing.T) time.Time {
	t.Helper()
	d := time.Now().AddDate(0, 0, 7)
	return time.Date(d.Year(), d.Month(), d.Day(), 10, 0, 0, 0, d.Location())
}

func TestCreateBooksAvailableSlot(t *testing.T) {
	repo := newFakeAppointmentRepo()
	patients := newFakePatientRepo()
	patients.patients["P1"] = &models.Patient{ID: "P1", ClinicID: "C1", Name: "Ada Osei"}
	svc, reminders := newTestService(repo, patients, openDay())

	appt, err := svc.Create(context.Background(), CreateRequest{
		ClinicID:    "C1",
		DoctorID:    "D1",
		PatientID:   "P1",
		PatientName: "Ada Osei",
		Phone:       "0700000000",
		DateTime:    futureSlotTime(t),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, appt.ID)
	assert.Equal(t, models.AppointmentUpcoming, appt.Status)
	assert.Equal(t, models.NotificationPending, appt.NotificationStatus)

	require.Len(t, reminders.payloads, 1)
	assert.Equal(t, appt.ID, reminders.payloads[0].AppointmentID)
}

func TestCreateRejectsClosedDay(t *testing.T) {
	day := openDay()
	day.Open = false
	svc, _ := newTestService(newFakeAppointmentRepo(), newFakePatientRepo(), day)

	_, err := svc.Create(context.Background(), CreateRequest{
		ClinicID: "C1", DoctorID: "D1", PatientName: "Ada Osei",
		Phone: "0700000000", DateTime: futureSlotTime(t),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not working")
}

func TestCreateRejectsTakenSlot(t *testing.T) {
	day := openDay()
	day.Slot("10:00").Available = false
	svc, _ := newTestService(newFakeAppointmentRepo(), newFakePatientRepo(), day)

	_, err := svc.Create(context.Background(), CreateRequest{
		ClinicID: "C1", DoctorID: "D1", PatientName: "Ada Osei",
		Phone: "0700000000", DateTime: futureSlotTime(t),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not available")
}

func TestListTabFilters(t *testing.T) {
	repo := newFakeAppointmentRepo()
	now := time.Now()
	repo.appts["a1"] = &models.Appointment{ID: "a1", ClinicID: "C1", PatientName: "Ada Osei", Status: models.AppointmentUpcoming, DateTime: now.AddDate(0, 0, 1)}
	repo.appts["a2"] = &models.Appointment{ID: "a2", ClinicID: "C1", PatientName: "Ben Carter", Status: models.AppointmentCompleted, DateTime: now.AddDate(0, 0, -1)}
	repo.appts["a3"] = &models.Appointment{ID: "a3", ClinicID: "C1", PatientName: "Cara Mensah", Status: models.AppointmentUpcoming, DateTime: now}
	svc, _ := newTestService(repo, newFakePatientRepo(), openDay())
	ctx := context.Background()

	all, err := svc.List(ctx, "C1", models.AppointmentListFilter{Tab: "all"})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	completed, err := svc.List(ctx, "C1", models.AppointmentListFilter{Tab: "completed"})
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, "a2", completed[0].ID)

	today, err := svc.List(ctx, "C1", models.AppointmentListFilter{Tab: "today"})
	require.NoError(t, err)
	require.Len(t, today, 1)
	assert.Equal(t, "a3", today[0].ID)

	searched, err := svc.List(ctx, "C1", models.AppointmentListFilter{Search: "ada"})
	require.NoError(t, err)
	require.Len(t, searched, 1)
	assert.Equal(t, "a1", searched[0].ID)

	_, err = svc.List(ctx, "C1", models.AppointmentListFilter{Tab: "bogus"})
	require.Error(t, err)
}

func TestUpdateValidatesStatus(t *testing.T) {
	repo := newFakeAppointmentRepo()
	repo.appts["a1"] = &models.Appointment{ID: "a1", ClinicID: "C1", Status: models.AppointmentUpcoming}
	svc, _ := newTestService(repo, newFakePatientRepo(), openDay())

	bad := "no-such-status"
	_, err := svc.Update(context.Background(), "a1", UpdateRequest{Status: &bad})
	require.Error(t, err)
}

func TestUpdateCompletedStampsLastVisit(t *testing.T) {
	repo := newFakeAppointmentRepo()
	patients := newFakePatientRepo()
	patients.patients["P1"] = &models.Patient{ID: "P1", ClinicID: "C1", Name: "Ada Osei"}
	visit := time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)
	repo.appts["a1"] = &models.Appointment{ID: "a1", ClinicID: "C1", PatientID: "P1", Status: models.AppointmentUpcoming, DateTime: visit}
	svc, _ := newTestService(repo, patients, openDay())

	completed := models.AppointmentCompleted
	appt, err := svc.Update(context.Background(), "a1", UpdateRequest{Status: &completed})
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentCompleted, appt.Status)

	require.Contains(t, patients.fields, "P1")
	assert.Equal(t, visit, patients.fields["P1"]["lastVisit"])
}

func TestGenerateMeetLinkStoresAndReuses(t *testing.T) {
	repo := newFakeAppointmentRepo()
	repo.appts["a1"] = &models.Appointment{ID: "a1", ClinicID: "C1", PatientName: "Ada Osei", DateTime: time.Now()}
	provider := &fakeMeetLinkProvider{link: "https://meet.google.com/abc-defg-hij"}
	svc, _ := newTestService(repo, newFakePatientRepo(), openDay())
	svc.MeetLinks = provider
	ctx := context.Background()

	link, err := svc.GenerateMeetLink(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, provider.link, link)
	assert.Equal(t, provider.link, repo.appts["a1"].GMeetLink)

	again, err := svc.GenerateMeetLink(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, provider.link, again)
	assert.Equal(t, 1, provider.calls)
}

func TestSearchEmptyPrefixReturnsNothing(t *testing.T) {
	repo := newFakeAppointmentRepo()
	repo.appts["a1"] = &models.Appointment{ID: "a1", ClinicID: "C1", PatientName: "Ada Osei"}
	svc, _ := newTestService(repo, newFakePatientRepo(), openDay())

	out, err := svc.Search(context.Background(), "C1", "  ")
	require.NoError(t, err)
	assert.Empty(t, out)
}
