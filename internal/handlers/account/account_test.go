package account

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/phoenixdao/phxledger/internal/domain"
	"github.com/phoenixdao/phxledger/internal/dto"
	"github.com/phoenixdao/phxledger/internal/service/accountservice"
	"github.com/phoenixdao/phxledger/pkg/auth"
	"github.com/phoenixdao/phxledger/pkg/utils"
)

const testAddress = "GBX4GLP7JCG4TPMWYXIDECIO3ZLRGSYZ6JN4XHRLNM53ZFJM34U7HDDT"

func NewMock(t *testing.T) (*AccountHandler, *MockService, *MockReferralService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	referralService := NewMockReferralService(ctrl)
	handler := New(service, referralService)
	defer ctrl.Finish()
	return handler, service, referralService
}

func authedRequest(method, url string, body []byte, userID int) *http.Request {
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	ctx := context.WithValue(req.Context(), auth.UserIDKey, userID)
	return req.WithContext(ctx)
}

func TestSaveWalletHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Address saved",
			body: `{"address":"` + testAddress + `"}`,
			prepareMock: func() {
				service.EXPECT().SaveWallet(gomock.Any(), 1, testAddress).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid address format",
			body: `{"address":"not-an-address"}`,
			prepareMock: func() {
				service.EXPECT().SaveWallet(gomock.Any(), 1, "not-an-address").Return(accountservice.ErrInvalidAddress)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: accountservice.ErrInvalidAddress.Error(),
		},
		{
			name: "Address already set",
			body: `{"address":"` + testAddress + `"}`,
			prepareMock: func() {
				service.EXPECT().SaveWallet(gomock.Any(), 1, testAddress).Return(accountservice.ErrWalletAlreadySet)
			},
			expectedCode:  http.StatusConflict,
			expectedError: accountservice.ErrWalletAlreadySet.Error(),
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authedRequest("POST", "/api/user/wallet", []byte(tt.body), 1)
			rr := httptest.NewRecorder()

			handler.SaveWallet(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestSubmitKYCHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Submission opened",
			body: `{"wallet":"` + testAddress + `"}`,
			prepareMock: func() {
				service.EXPECT().SubmitKYC(gomock.Any(), 1, testAddress).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Already submitted",
			body: `{"wallet":"` + testAddress + `"}`,
			prepareMock: func() {
				service.EXPECT().SubmitKYC(gomock.Any(), 1, testAddress).Return(accountservice.ErrKYCAlreadySubmitted)
			},
			expectedCode:  http.StatusConflict,
			expectedError: accountservice.ErrKYCAlreadySubmitted.Error(),
		},
		{
			name: "Wallet already used",
			body: `{"wallet":"` + testAddress + `"}`,
			prepareMock: func() {
				service.EXPECT().SubmitKYC(gomock.Any(), 1, testAddress).Return(accountservice.ErrWalletInUse)
			},
			expectedCode:  http.StatusConflict,
			expectedError: accountservice.ErrWalletInUse.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authedRequest("POST", "/api/user/kyc", []byte(tt.body), 1)
			rr := httptest.NewRecorder()

			handler.SubmitKYC(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestGetReferralsHandler(t *testing.T) {
	handler, _, referralService := NewMock(t)

	t.Run("Referrals returned", func(t *testing.T) {
		referralService.EXPECT().ListReferred(gomock.Any(), 1).Return([]domain.ReferralEdge{
			{Login: "miner42", KYCVerified: true, WalletAdded: true, Sessions: 170, BonusPaid: true},
			{Login: "newbie", Sessions: 12},
		}, nil)

		req := authedRequest("GET", "/api/user/referrals", nil, 1)
		rr := httptest.NewRecorder()

		handler.GetReferrals(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp []dto.ReferralResponseDTO
		err := json.NewDecoder(rr.Body).Decode(&resp)
		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "miner42", resp[0].Login)
		assert.True(t, resp[0].BonusPaid)
	})

	t.Run("Internal error", func(t *testing.T) {
		referralService.EXPECT().ListReferred(gomock.Any(), 1).Return(nil, errors.New("database error"))

		req := authedRequest("GET", "/api/user/referrals", nil, 1)
		rr := httptest.NewRecorder()

		handler.GetReferrals(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
