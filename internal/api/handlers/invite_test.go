package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "matchday-backend/internal/errors"
	"matchday-backend/internal/mocks"
	"matchday-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// InviteHandlerTestSuite tests the InviteHandler
type InviteHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	ctrl        *gomock.Controller
	mockService *mocks.MockInviteServiceInterface
	handler     *InviteHandler
	actorID     uuid.UUID
}

// SetupSuite sets up the test suite
func (suite *InviteHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

// SetupTest sets up each individual test
func (suite *InviteHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockInviteServiceInterface(suite.ctrl)
	suite.handler = NewInviteHandler(suite.mockService)
	suite.actorID = uuid.New()

	suite.router = gin.New()
	suite.router.Use(func(c *gin.Context) {
		c.Set("user_id", suite.actorID)
		c.Next()
	})

	v1 := suite.router.Group("/api/v1")
	{
		v1.POST("/groups/:id/invites", suite.handler.CreateInvite)
		v1.GET("/groups/:id/invites", suite.handler.ListInvites)
		v1.POST("/invites/redeem", suite.handler.RedeemInvite)
		v1.GET("/invites/:code", suite.handler.PreviewInvite)
		v1.DELETE("/invites/:id", suite.handler.DeactivateInvite)
	}
}

// TearDownTest cleans up after each test
func (suite *InviteHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateInvite tests creating an invite
func (suite *InviteHandlerTestSuite) TestCreateInvite() {
	groupID := uuid.New()
	expected := &service.InviteResponse{
		ID:       uuid.New(),
		GroupID:  groupID,
		Code:     "ABCD2345",
		MaxUses:  1,
		IsActive: true,
	}

	suite.mockService.EXPECT().
		Create(suite.actorID, groupID, gomock.Any()).
		Return(expected, nil)

	body, _ := json.Marshal(service.CreateInviteRequest{MaxUses: 1})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/groups/"+groupID.String()+"/invites", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response service.InviteResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "ABCD2345", response.Code)
}

// TestCreateInviteForbidden tests the authorization mapping
func (suite *InviteHandlerTestSuite) TestCreateInviteForbidden() {
	groupID := uuid.New()

	suite.mockService.EXPECT().
		Create(suite.actorID, groupID, gomock.Any()).
		Return(nil, apperrors.ErrNotAuthorized)

	body, _ := json.Marshal(service.CreateInviteRequest{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/groups/"+groupID.String()+"/invites", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

// TestRedeemInvite tests redeeming an invite code
func (suite *InviteHandlerTestSuite) TestRedeemInvite() {
	groupID := uuid.New()
	expected := &service.RedeemResponse{GroupID: groupID, GroupName: "Thursday Five-a-side"}

	suite.mockService.EXPECT().
		Redeem(suite.actorID, "ABCD2345").
		Return(expected, nil)

	body, _ := json.Marshal(RedeemRequest{Code: "ABCD2345"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/invites/redeem", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response service.RedeemResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), groupID, response.GroupID)
	assert.Equal(suite.T(), "Thursday Five-a-side", response.GroupName)
}

// TestRedeemInviteMissingCode tests redeeming without a code
func (suite *InviteHandlerTestSuite) TestRedeemInviteMissingCode() {
	body, _ := json.Marshal(RedeemRequest{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/invites/redeem", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestRedeemInviteExpired tests the invite rejection mapping
func (suite *InviteHandlerTestSuite) TestRedeemInviteExpired() {
	suite.mockService.EXPECT().
		Redeem(suite.actorID, "OLDCODE1").
		Return(nil, apperrors.ErrInviteExpired)

	body, _ := json.Marshal(RedeemRequest{Code: "OLDCODE1"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/invites/redeem", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

// TestRedeemInviteBanned tests the ban mapping
func (suite *InviteHandlerTestSuite) TestRedeemInviteBanned() {
	suite.mockService.EXPECT().
		Redeem(suite.actorID, "ABCD2345").
		Return(nil, apperrors.ErrBanned)

	body, _ := json.Marshal(RedeemRequest{Code: "ABCD2345"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/invites/redeem", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

// TestPreviewInvite tests resolving a code without joining
func (suite *InviteHandlerTestSuite) TestPreviewInvite() {
	groupID := uuid.New()
	expected := &service.RedeemResponse{GroupID: groupID, GroupName: "Thursday Five-a-side"}

	suite.mockService.EXPECT().
		Preview("ABCD2345").
		Return(expected, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/invites/ABCD2345", nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestDeactivateInvite tests disabling an invite
func (suite *InviteHandlerTestSuite) TestDeactivateInvite() {
	inviteID := uuid.New()

	suite.mockService.EXPECT().
		Deactivate(suite.actorID, inviteID).
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/invites/"+inviteID.String(), nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

// Run the test suite
func TestInviteHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(InviteHandlerTestSuite))
}
