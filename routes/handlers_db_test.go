package routes

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"mehendi-studio-server/database"
	"mehendi-studio-server/models"
)

// setupTestDB points the global connection at an in-memory store with the
// same schema and error translation the Postgres deployment gets, so the
// handlers run unmodified.
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // keep every session on the one in-memory store

	require.NoError(t, db.AutoMigrate(&models.Design{}, &models.Booking{}, &models.Inquiry{}))

	database.DB = db
	t.Cleanup(func() { database.DB = nil })
}

func newAPIRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/v1/bookings", SubmitBooking)
	r.PUT("/api/v1/admin/designs/:id", UpdateDesign)
	r.DELETE("/api/v1/admin/designs/:id", DeleteDesign)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func multipartForm(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func bookingPayload(date string) map[string]string {
	return map[string]string{
		"name":           "Asha",
		"design_title":   "Festive Wristband",
		"design_price":   "₹85",
		"contact_number": "+91 9000000000",
		"address":        "12 Rose Street",
		"available_time": "14:00",
		"date":           date,
	}
}

func TestSubmitBookingRejectsSecondBookingForSameDate(t *testing.T) {
	setupTestDB(t)
	r := newAPIRouter()

	first := postJSON(t, r, "/api/v1/bookings", bookingPayload("2025-03-10"))
	require.Equal(t, http.StatusCreated, first.Code)

	payload := bookingPayload("2025-03-10")
	payload["name"] = "Meera"
	second := postJSON(t, r, "/api/v1/bookings", payload)
	assert.Equal(t, http.StatusConflict, second.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, DateConflictMessage, resp.Message)

	var count int64
	require.NoError(t, database.DB.Model(&models.Booking{}).Where("date = ?", "2025-03-10").Count(&count).Error)
	assert.Equal(t, int64(1), count, "the conflicting submission must not write")
}

func TestSubmitBookingStoresTrimmedFieldsAndDerivedDay(t *testing.T) {
	setupTestDB(t)
	r := newAPIRouter()

	payload := bookingPayload("2025-03-10")
	payload["name"] = "  Asha  "
	payload["available_time"] = "  14:00  "
	w := postJSON(t, r, "/api/v1/bookings", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	var booking models.Booking
	require.NoError(t, database.DB.Where("date = ?", "2025-03-10").First(&booking).Error)
	assert.Equal(t, "Asha", booking.Name)
	assert.Equal(t, "14:00", booking.AvailableTime)
	assert.Equal(t, "Monday", booking.Day)
	assert.Equal(t, models.BookingStatusPending, booking.Status)
}

func TestBookingDateUniqueIndexBackstopsTheExistenceCheck(t *testing.T) {
	setupTestDB(t)

	first := models.Booking{
		Name: "Asha", DesignTitle: "N/A", DesignPrice: "N/A",
		ContactNumber: "+91 9000000000", Address: "12 Rose Street",
		AvailableTime: "14:00", Date: "2025-03-10", Day: "Monday",
		Status: models.BookingStatusPending,
	}
	require.NoError(t, database.DB.Create(&first).Error)

	// A concurrent submission that slipped past the existence check still
	// fails on insert, with the translated error the handler maps to 409
	second := first
	second.ID = 0
	second.Name = "Meera"
	err := database.DB.Create(&second).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestUpdateDesignWithoutImageRetainsImageURL(t *testing.T) {
	setupTestDB(t)
	r := newAPIRouter()

	design := models.Design{
		Title:       "Festive Wristband",
		Description: "Delicate wristband pattern",
		Price:       "₹85",
		ServiceType: "Festive Mehendi",
		ImageURL:    "https://res.cloudinary.com/demo/image/upload/wristband.jpg",
	}
	require.NoError(t, database.DB.Create(&design).Error)

	body, contentType := multipartForm(t, map[string]string{
		"title":        "Festive Wristband Deluxe",
		"description":  "Delicate wristband pattern with glitter",
		"price":        "120",
		"service_type": "Festive Mehendi",
	})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/designs/1", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Design
	require.NoError(t, database.DB.First(&updated, design.ID).Error)
	assert.Equal(t, "Festive Wristband Deluxe", updated.Title)
	assert.Equal(t, "₹120", updated.Price)
	assert.Equal(t, design.ImageURL, updated.ImageURL, "edits without a new file keep the existing image")
}

func TestDeleteDesignPreservesBookingSnapshots(t *testing.T) {
	setupTestDB(t)
	r := newAPIRouter()

	design := models.Design{
		Title:       "Bridal Special",
		Description: "Full-hand bridal pattern",
		Price:       "₹2500",
		ServiceType: "Bridal Mehendi",
		ImageURL:    "https://res.cloudinary.com/demo/image/upload/bridal.jpg",
	}
	require.NoError(t, database.DB.Create(&design).Error)

	booking := models.Booking{
		Name: "Asha", DesignTitle: design.Title, DesignPrice: design.Price,
		ContactNumber: "+91 9000000000", Address: "12 Rose Street",
		AvailableTime: "14:00", Date: "2025-03-10", Day: "Monday",
		Status: models.BookingStatusPending,
	}
	require.NoError(t, database.DB.Create(&booking).Error)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/designs/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var designs int64
	require.NoError(t, database.DB.Model(&models.Design{}).Count(&designs).Error)
	assert.Equal(t, int64(0), designs)

	var kept models.Booking
	require.NoError(t, database.DB.First(&kept, booking.ID).Error)
	assert.Equal(t, "Bridal Special", kept.DesignTitle)
	assert.Equal(t, "₹2500", kept.DesignPrice)
}
