//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"flute-live-api/internal/domain/reservation"
	"flute-live-api/internal/handler/api"
	"flute-live-api/internal/pkg/errs"
	"flute-live-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type fakeReservationCommands struct {
	result   *commands.SubmitReservationResult
	err      error
	received *reservation.Reservation
}

func (f *fakeReservationCommands) SubmitReservation(_ context.Context, r *reservation.Reservation) (*commands.SubmitReservationResult, error) {
	f.received = r
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	fakeCommands *fakeReservationCommands
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.fakeCommands = &fakeReservationCommands{}
	handler := api.NewReservationHandler(s.fakeCommands)
	s.router.POST("/api/reservation", handler.SubmitReservation)
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) perform(body any) *httptest.ResponseRecorder {
	data, err := json.Marshal(body)
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, "/api/reservation", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func validBody() map[string]any {
	return map[string]any{
		"name":           "山田 太郎",
		"nameKana":       "やまだ たろう",
		"email":          "taro@example.com",
		"phone":          "090-1234-5678",
		"liveDate":       "2025年10月4日（土）",
		"generalTickets": 2,
		"studentTickets": 1,
		"deliveryMethod": "postal",
		"paymentMethod":  "bank",
		"howDidYouKnow":  "チラシ",
		"agreeCancel":    true,
		"agreePrivacy":   true,
	}
}

func (s *ReservationHandlerTestSuite) TestSubmitReservation() {
	s.Run("success: 200 with flags and total", func() {
		s.fakeCommands.result = &commands.SubmitReservationResult{
			Accepted:    true,
			Persisted:   true,
			Notified:    false,
			TotalAmount: 11200,
			Message:     "ご予約ありがとうございます。確認メールをお送りしました。",
		}
		s.fakeCommands.err = nil

		rec := s.perform(validBody())
		s.Equal(http.StatusOK, rec.Code)

		var resp map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Equal(true, resp["success"])
		s.Equal(true, resp["persisted"])
		s.Equal(false, resp["notified"])
		s.Equal(float64(11200), resp["totalAmount"])

		s.Require().NotNil(s.fakeCommands.received)
		s.Equal(reservation.DeliveryPostal, s.fakeCommands.received.DeliveryMethod)
	})

	s.Run("validation errors: 400 with field list", func() {
		var v errs.ValidationErrors
		v.Add("email", "正しいメールアドレスを入力してください")
		v.Add("agreePrivacy", "個人情報の取り扱いに同意してください")
		s.fakeCommands.err = v
		s.fakeCommands.result = nil

		rec := s.perform(validBody())
		s.Equal(http.StatusBadRequest, rec.Code)

		var resp struct {
			Error  string            `json:"error"`
			Fields []errs.FieldError `json:"fields"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Equal("入力内容に誤りがあります", resp.Error)
		s.Len(resp.Fields, 2)
		s.Equal("email", resp.Fields[0].Field)
	})

	s.Run("malformed json: 400", func() {
		req := httptest.NewRequest(http.MethodPost, "/api/reservation", bytes.NewReader([]byte("{broken")))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("unexpected usecase error: 500", func() {
		s.fakeCommands.err = errs.New("store exploded")
		s.fakeCommands.result = nil

		rec := s.perform(validBody())
		s.Equal(http.StatusInternalServerError, rec.Code)
		s.Contains(rec.Body.String(), "サーバーエラーが発生しました")
	})
}
