//go:build unit

package api_test

import (
	"net/http"
	"testing"

	domappt "salon-booking/internal/domain/appointment"
	"salon-booking/internal/handler/api"
	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/commands"
	"salon-booking/tests/common/builder"
	"salon-booking/tests/common/httptest"
	"salon-booking/tests/common/testutil"
	commandsmock "salon-booking/tests/mock/commands"
	queriesmock "salon-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AppointmentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAppointmentCommands
	mockQueries  *queriesmock.MockAppointmentQueries
	handler      *api.AppointmentHandler
}

func (s *AppointmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAppointmentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAppointmentQueries(s.mockCtrl)
	s.handler = api.NewAppointmentHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/appointments", s.handler.List)
	s.router.POST("/appointments", s.handler.Book)
	s.router.POST("/appointments/cleanup", s.handler.Cleanup)
	s.router.PATCH("/appointments/:id", s.handler.UpdateStatus)
}

func (s *AppointmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAppointmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}

// ================================================================================
// TestList
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestList() {
	s.Run("success: returns every appointment", func() {
		items := []domappt.Appointment{
			builder.NewAppointmentBuilder().WithID(1).WithStatus("pending").BuildDomain(),
			builder.NewAppointmentBuilder().WithID(2).WithStatus("confirmed").BuildDomain(),
		}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments", nil)

		var res []resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res, 2)
		s.Equal(int64(1), res[0].ID)
		s.Equal("confirmed", res[1].Status)
		s.Equal("1", res[0].ServiceID)
	})

	s.Run("success: empty store is an empty array", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return([]domappt.Appointment{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments", nil)

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})

	s.Run("error: storage failure is 500", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return(nil, errs.Mark(errs.New("disk gone"), errs.ErrStorage)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load appointments")
	})
}

// ================================================================================
// TestBook
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestBook() {
	url := "/appointments"
	reqBody := builder.NewAppointmentBuilder().BuildCreateRequestDTO()
	stored := builder.NewAppointmentBuilder().WithStatus("pending").BuildDomain()

	s.Run("success: new appointment is 201", func() {
		s.mockCommands.EXPECT().Book(gomock.Any(), gomock.Any()).
			Return(&commands.BookResult{Appointment: stored, Outcome: domappt.OutcomeCreated}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var res resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(stored.ID, res.ID)
		s.Equal("pending", res.Status)
	})

	s.Run("success: replaced appointment is 200", func() {
		s.mockCommands.EXPECT().Book(gomock.Any(), gomock.Any()).
			Return(&commands.BookResult{Appointment: stored, Outcome: domappt.OutcomeReplaced}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("request: numeric service ids are accepted", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("serviceId", 3), testutil.Field("stylistId", 4))
		s.mockCommands.EXPECT().Book(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req reqdto.CreateAppointmentRequest) (*commands.BookResult, error) {
				s.Equal("3", req.ServiceID.String())
				s.Equal("4", req.StylistID.String())
				return &commands.BookResult{Appointment: stored, Outcome: domappt.OutcomeCreated}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)

		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("error: incomplete data is 400", func() {
		s.mockCommands.EXPECT().Book(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(domappt.ErrIncompleteData, errs.ErrValidation)).Times(1)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("clientName", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "incomplete data")
	})

	s.Run("error: full slot is 409", func() {
		s.mockCommands.EXPECT().Book(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(domappt.ErrSlotFull, errs.ErrSlotFull)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "time slot full")
	})

	s.Run("error: malformed JSON is 400 without calling the usecase", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, `{"id":`)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// ================================================================================
// TestUpdateStatus
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestUpdateStatus() {
	updated := builder.NewAppointmentBuilder().WithID(7).WithStatus("confirmed").BuildDomain()

	s.Run("success: returns updated appointment", func() {
		s.mockCommands.EXPECT().
			UpdateStatus(gomock.Any(), int64(7), reqdto.UpdateAppointmentStatusRequest{Status: "confirmed"}).
			Return(&updated, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/appointments/7", map[string]any{"status": "confirmed"})

		var res resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("confirmed", res.Status)
	})

	s.Run("error: unknown id is 404", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), int64(99), gomock.Any()).
			Return(nil, errs.Mark(domappt.ErrNotFound, errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/appointments/99", map[string]any{"status": "confirmed"})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "appointment not found")
	})

	s.Run("error: invalid status is 400", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), int64(7), gomock.Any()).
			Return(nil, errs.Mark(domappt.ErrInvalidStatus, errs.ErrValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/appointments/7", map[string]any{"status": "done"})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid status")
	})

	s.Run("error: missing status is 400", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), int64(7), reqdto.UpdateAppointmentStatusRequest{}).
			Return(nil, errs.Mark(domappt.ErrInvalidStatus, errs.ErrValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/appointments/7", map[string]any{})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid status")
	})

	s.Run("error: unknown id without status is 404", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), int64(999), reqdto.UpdateAppointmentStatusRequest{}).
			Return(nil, errs.Mark(domappt.ErrNotFound, errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/appointments/999", map[string]any{})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "appointment not found")
	})

	s.Run("error: malformed body is 400 without calling the usecase", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPatch, "/appointments/7", `{"status":`)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid status")
	})

	s.Run("error: non-numeric id is 404", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/appointments/abc", map[string]any{"status": "confirmed"})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "appointment not found")
	})
}

// ================================================================================
// TestCleanup
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestCleanup() {
	url := "/appointments/cleanup"

	s.Run("success: returns counts", func() {
		s.mockCommands.EXPECT().
			Cleanup(gomock.Any(), reqdto.CleanupAppointmentsRequest{Before: "2025-11-01"}).
			Return(&commands.CleanupResult{Removed: 3, Kept: 2}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"before": "2025-11-01"})

		var res resdto.CleanupResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(resdto.CleanupResponse{Removed: 3, Kept: 2}, res)
	})

	s.Run("error: missing cutoff is 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "before is required")
	})

	s.Run("error: unparsable cutoff is 400", func() {
		s.mockCommands.EXPECT().Cleanup(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(domappt.ErrInvalidDate, errs.ErrValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"before": "yesterday"})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid date")
	})
}
