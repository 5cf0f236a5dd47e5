package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"clinic-appointments-api/internal/handler"
	"clinic-appointments-api/internal/models"
	"clinic-appointments-api/internal/repository"
	"clinic-appointments-api/internal/service"

	"github.com/gin-gonic/gin"
)

// memStore is an in-memory AppointmentStore with the same bound
// semantics as the MySQL repository: half-open Exists/List windows,
// inclusive doctor count.
type memStore struct {
	mu     sync.Mutex
	nextID uint
	appts  map[uint]models.Appointment
}

func newMemStore() *memStore {
	return &memStore{appts: make(map[uint]models.Appointment)}
}

func (m *memStore) add(appt models.Appointment) uint {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	appt.ID = m.nextID
	m.appts[appt.ID] = appt
	return appt.ID
}

func inWindow(start, from, to time.Time) bool {
	return !start.Before(from) && start.Before(to)
}

func (m *memStore) ExistsByRoomAndStartBetween(roomID uint, from, to time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.appts {
		if a.RoomID == roomID && inWindow(a.StartTime, from, to) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) ExistsByDoctorAndStartBetween(doctorID uint, from, to time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.appts {
		if a.DoctorID == doctorID && inWindow(a.StartTime, from, to) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) ExistsByPatientAndStartBetween(patientName string, from, to time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.appts {
		if a.PatientName == patientName && inWindow(a.StartTime, from, to) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) ListByPatientAndStartBetween(patientName string, from, to time.Time) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Appointment
	for _, a := range m.appts {
		if a.PatientName == patientName && inWindow(a.StartTime, from, to) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memStore) CountByDoctorAndStartBetween(doctorID uint, from, to time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, a := range m.appts {
		if a.DoctorID == doctorID && !a.StartTime.Before(from) && !a.StartTime.After(to) {
			n++
		}
	}
	return n, nil
}

func (m *memStore) FindByID(id uint) (*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.appts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &a, nil
}

func (m *memStore) ListAll() ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Appointment, 0, len(m.appts))
	for _, a := range m.appts {
		out = append(out, a)
	}
	return out, nil
}

func (m *memStore) ListByStartBetween(from, to time.Time) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Appointment
	for _, a := range m.appts {
		if inWindow(a.StartTime, from, to) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memStore) ListByRoomAndStartBetween(roomID uint, from, to time.Time) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Appointment
	for _, a := range m.appts {
		if a.RoomID == roomID && inWindow(a.StartTime, from, to) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memStore) ListByDoctorAndStartBetween(doctorID uint, from, to time.Time) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Appointment
	for _, a := range m.appts {
		if a.DoctorID == doctorID && inWindow(a.StartTime, from, to) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memStore) Save(appt *models.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if appt.ID == 0 {
		m.nextID++
		appt.ID = m.nextID
	}
	m.appts[appt.ID] = *appt
	return nil
}

func (m *memStore) DeleteByID(id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.appts, id)
	return nil
}

func (m *memStore) InTransaction(fn func(store repository.AppointmentStore) error) error {
	return fn(m)
}

func setupRouter(store *memStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := handler.NewAppointmentHandler(service.NewAppointmentService(store))
	appointments := r.Group("/api/v1/appointments")
	{
		appointments.GET("", h.GetAllAppointments)
		appointments.GET("/search", h.SearchAppointments)
		appointments.GET("/:id", h.GetAppointment)
		appointments.POST("", h.CreateAppointment)
		appointments.PUT("/:id", h.UpdateAppointment)
		appointments.DELETE("/:id", h.DeleteAppointment)
		appointments.POST("/:id/cancel", h.CancelAppointment)
	}
	return r
}

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (int, apiResponse) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp apiResponse
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response %q: %v", w.Body.String(), err)
		}
	}
	return w.Code, resp
}

// tomorrowAt returns tomorrow at the given wall-clock hour in UTC,
// always in the future.
func tomorrowAt(hour, minute int) time.Time {
	d := time.Now().UTC().Add(24 * time.Hour)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, time.UTC)
}

func appointmentBody(roomID, doctorID uint, patient string, start time.Time) map[string]any {
	return map[string]any{
		"room_id":      roomID,
		"doctor_id":    doctorID,
		"patient_name": patient,
		"start_time":   start.Format(time.RFC3339),
	}
}

func TestCreateAppointment(t *testing.T) {
	r := setupRouter(newMemStore())

	code, resp := doJSON(t, r, http.MethodPost, "/api/v1/appointments",
		appointmentBody(1, 1, "Ana", tomorrowAt(9, 0)))
	if code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (%s)", code, resp.Error)
	}
	var created models.Appointment
	if err := json.Unmarshal(resp.Data, &created); err != nil {
		t.Fatalf("decode created appointment: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("created appointment has no id")
	}
}

func TestCreateAppointment_BadRequests(t *testing.T) {
	r := setupRouter(newMemStore())

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewBufferString("{"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})

	t.Run("past start time", func(t *testing.T) {
		code, resp := doJSON(t, r, http.MethodPost, "/api/v1/appointments",
			appointmentBody(1, 1, "Ana", time.Now().UTC().Add(-time.Hour)))
		if code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", code)
		}
		if resp.Error != "start_time must be in the future" {
			t.Fatalf("error = %q", resp.Error)
		}
	})
}

func TestScheduling_EndToEnd(t *testing.T) {
	r := setupRouter(newMemStore())

	post := func(roomID, doctorID uint, patient string, start time.Time) (int, apiResponse) {
		return doJSON(t, r, http.MethodPost, "/api/v1/appointments",
			appointmentBody(roomID, doctorID, patient, start))
	}

	// A1: Ana with doctor 1 in room 1, tomorrow 09:00.
	if code, resp := post(1, 1, "Ana", tomorrowAt(9, 0)); code != http.StatusCreated {
		t.Fatalf("A1 status = %d (%s)", code, resp.Error)
	}

	// A2: same room and slot, different doctor and patient. Rule 1
	// fires on room+time alone.
	code, resp := post(1, 2, "Beto", tomorrowAt(9, 0))
	if code != http.StatusBadRequest || resp.Error != "the room already has an appointment at that time" {
		t.Fatalf("A2 = %d %q, want room-overlap rejection", code, resp.Error)
	}

	// A3: doctor 1 again in another room at 08:30; A1's start falls
	// inside the candidate hour, so the doctor rule fires.
	code, resp = post(2, 1, "Beto", tomorrowAt(8, 30))
	if code != http.StatusBadRequest || resp.Error != "the doctor already has an appointment at that time" {
		t.Fatalf("A3 = %d %q, want doctor-overlap rejection", code, resp.Error)
	}

	// A4: Ana again 90 minutes after A1, other room and doctor: the
	// patient spacing rule fires.
	code, resp = post(2, 2, "Ana", tomorrowAt(10, 30))
	if code != http.StatusBadRequest || resp.Error != "the patient already has an appointment less than 2 hours apart that day" {
		t.Fatalf("A4 = %d %q, want patient-spacing rejection", code, resp.Error)
	}

	// A5: Ana at 11:00, exactly two hours after A1: admitted.
	if code, resp := post(2, 2, "Ana", tomorrowAt(11, 0)); code != http.StatusCreated {
		t.Fatalf("A5 status = %d (%s)", code, resp.Error)
	}
}

func TestGetAppointment_NotFound(t *testing.T) {
	r := setupRouter(newMemStore())

	code, _ := doJSON(t, r, http.MethodGet, "/api/v1/appointments/999", nil)
	if code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", code)
	}
}

func TestUpdateAppointment(t *testing.T) {
	store := newMemStore()
	r := setupRouter(store)

	id := store.add(models.Appointment{
		RoomID: 1, DoctorID: 1, PatientName: "Ana", StartTime: tomorrowAt(9, 0),
	})

	// Move to a free slot in another room with another doctor.
	code, resp := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/v1/appointments/%d", id),
		appointmentBody(2, 2, "Ana", tomorrowAt(14, 0)))
	if code != http.StatusOK {
		t.Fatalf("status = %d (%s)", code, resp.Error)
	}
	var updated models.Appointment
	if err := json.Unmarshal(resp.Data, &updated); err != nil {
		t.Fatalf("decode updated appointment: %v", err)
	}
	if updated.RoomID != 2 || updated.DoctorID != 2 {
		t.Fatalf("fields not replaced: %+v", updated)
	}

	code, _ = doJSON(t, r, http.MethodPut, "/api/v1/appointments/999",
		appointmentBody(2, 2, "Ana", tomorrowAt(16, 0)))
	if code != http.StatusNotFound {
		t.Fatalf("missing id status = %d, want 404", code)
	}
}

func TestDeleteAppointment(t *testing.T) {
	store := newMemStore()
	r := setupRouter(store)

	id := store.add(models.Appointment{
		RoomID: 1, DoctorID: 1, PatientName: "Ana", StartTime: tomorrowAt(9, 0),
	})

	code, _ := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/v1/appointments/%d", id), nil)
	if code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", code)
	}
	if _, err := store.FindByID(id); err == nil {
		t.Fatal("appointment still present after delete")
	}
}

func TestCancelAppointment(t *testing.T) {
	store := newMemStore()
	r := setupRouter(store)

	pastID := store.add(models.Appointment{
		RoomID: 1, DoctorID: 1, PatientName: "Ana", StartTime: time.Now().UTC().Add(-time.Hour),
	})
	futureID := store.add(models.Appointment{
		RoomID: 1, DoctorID: 1, PatientName: "Beto", StartTime: tomorrowAt(9, 0),
	})

	code, _ := doJSON(t, r, http.MethodPost, "/api/v1/appointments/999/cancel", nil)
	if code != http.StatusNotFound {
		t.Fatalf("missing id status = %d, want 404", code)
	}

	code, resp := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/appointments/%d/cancel", pastID), nil)
	if code != http.StatusBadRequest || resp.Error != "cannot cancel a past appointment" {
		t.Fatalf("past appointment = %d %q, want 400", code, resp.Error)
	}
	if _, err := store.FindByID(pastID); err != nil {
		t.Fatal("past appointment must not be deleted")
	}

	code, _ = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/appointments/%d/cancel", futureID), nil)
	if code != http.StatusNoContent {
		t.Fatalf("future appointment status = %d, want 204", code)
	}
	if _, err := store.FindByID(futureID); err == nil {
		t.Fatal("future appointment still present after cancel")
	}
}

func TestSearchAppointments(t *testing.T) {
	store := newMemStore()
	r := setupRouter(store)

	day := tomorrowAt(9, 0)
	store.add(models.Appointment{RoomID: 1, DoctorID: 1, PatientName: "Ana", StartTime: day})
	store.add(models.Appointment{RoomID: 2, DoctorID: 2, PatientName: "Beto", StartTime: day.Add(2 * time.Hour)})
	store.add(models.Appointment{RoomID: 1, DoctorID: 1, PatientName: "Ana", StartTime: day.Add(48 * time.Hour)})

	count := func(path string) int {
		t.Helper()
		code, resp := doJSON(t, r, http.MethodGet, path, nil)
		if code != http.StatusOK {
			t.Fatalf("%s status = %d (%s)", path, code, resp.Error)
		}
		var data struct {
			Appointments []models.Appointment `json:"appointments"`
			Count        int                  `json:"count"`
		}
		if err := json.Unmarshal(resp.Data, &data); err != nil {
			t.Fatalf("decode search response: %v", err)
		}
		return data.Count
	}

	dateParam := day.Format("2006-01-02")
	if got := count("/api/v1/appointments/search?date=" + dateParam); got != 2 {
		t.Fatalf("date filter count = %d, want 2", got)
	}
	if got := count("/api/v1/appointments/search?date=" + dateParam + "&room_id=1&doctor_id=2"); got != 1 {
		t.Fatalf("room precedence count = %d, want 1 (room filter must win)", got)
	}
	if got := count("/api/v1/appointments/search?date=" + dateParam + "&doctor_id=2"); got != 1 {
		t.Fatalf("doctor filter count = %d, want 1", got)
	}
	// No date: all other filters are ignored, full set comes back.
	if got := count("/api/v1/appointments/search?room_id=1"); got != 3 {
		t.Fatalf("no-date count = %d, want 3", got)
	}

	code, _ := doJSON(t, r, http.MethodGet, "/api/v1/appointments/search?date=not-a-date", nil)
	if code != http.StatusBadRequest {
		t.Fatalf("bad date status = %d, want 400", code)
	}
}
