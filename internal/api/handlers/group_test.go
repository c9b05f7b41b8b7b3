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

// GroupHandlerTestSuite tests the GroupHandler
type GroupHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	ctrl        *gomock.Controller
	mockService *mocks.MockGroupServiceInterface
	handler     *GroupHandler
	actorID     uuid.UUID
}

// SetupSuite sets up the test suite
func (suite *GroupHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

// SetupTest sets up each individual test
func (suite *GroupHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockGroupServiceInterface(suite.ctrl)
	suite.handler = NewGroupHandler(suite.mockService)
	suite.actorID = uuid.New()

	suite.router = gin.New()
	// Stand-in for the auth middleware
	suite.router.Use(func(c *gin.Context) {
		c.Set("user_id", suite.actorID)
		c.Next()
	})

	v1 := suite.router.Group("/api/v1")
	{
		groups := v1.Group("/groups")
		{
			groups.POST("", suite.handler.CreateGroup)
			groups.GET("", suite.handler.ListGroups)
			groups.GET("/public", suite.handler.DiscoverGroups)
			groups.GET("/:id", suite.handler.GetGroup)
			groups.PUT("/:id", suite.handler.UpdateGroup)
			groups.DELETE("/:id", suite.handler.DeleteGroup)
			groups.POST("/:id/join", suite.handler.JoinGroup)
		}
	}
}

// TearDownTest cleans up after each test
func (suite *GroupHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateGroup tests creating a new group
func (suite *GroupHandlerTestSuite) TestCreateGroup() {
	groupID := uuid.New()
	request := service.CreateGroupRequest{Name: "Thursday Five-a-side"}
	expectedResponse := &service.GroupResponse{ID: groupID, Name: "Thursday Five-a-side"}

	suite.mockService.EXPECT().
		Create(suite.actorID, gomock.Any()).
		Return(expectedResponse, nil)

	body, _ := json.Marshal(request)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/groups", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response service.GroupResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), groupID, response.ID)
	assert.Equal(suite.T(), "Thursday Five-a-side", response.Name)
}

// TestCreateGroupInvalidBody tests creating a group with a malformed body
func (suite *GroupHandlerTestSuite) TestCreateGroupInvalidBody() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/groups", bytes.NewBufferString("not json"))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestGetGroupNotFound tests the not-found mapping
func (suite *GroupHandlerTestSuite) TestGetGroupNotFound() {
	groupID := uuid.New()

	suite.mockService.EXPECT().
		GetByID(suite.actorID, groupID).
		Return(nil, apperrors.ErrGroupNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/groups/"+groupID.String(), nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestGetGroupInvalidID tests a non-UUID path parameter
func (suite *GroupHandlerTestSuite) TestGetGroupInvalidID() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/groups/not-a-uuid", nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestUpdateGroupForbidden tests the authorization mapping
func (suite *GroupHandlerTestSuite) TestUpdateGroupForbidden() {
	groupID := uuid.New()

	suite.mockService.EXPECT().
		Update(suite.actorID, groupID, gomock.Any()).
		Return(nil, apperrors.ErrNotAuthorized)

	body, _ := json.Marshal(service.UpdateGroupRequest{})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/groups/"+groupID.String(), bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

// TestDeleteGroup tests deleting a group
func (suite *GroupHandlerTestSuite) TestDeleteGroup() {
	groupID := uuid.New()

	suite.mockService.EXPECT().
		Delete(suite.actorID, groupID).
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/groups/"+groupID.String(), nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

// TestJoinGroupPrivate tests the private-group conflict mapping
func (suite *GroupHandlerTestSuite) TestJoinGroupPrivate() {
	groupID := uuid.New()

	suite.mockService.EXPECT().
		Join(suite.actorID, groupID).
		Return(apperrors.ErrGroupPrivate)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/groups/"+groupID.String()+"/join", nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

// TestJoinGroupAlreadyMember tests the already-member conflict mapping
func (suite *GroupHandlerTestSuite) TestJoinGroupAlreadyMember() {
	groupID := uuid.New()

	suite.mockService.EXPECT().
		Join(suite.actorID, groupID).
		Return(apperrors.ErrAlreadyMember)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/groups/"+groupID.String()+"/join", nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

// TestListGroups tests listing the caller's groups
func (suite *GroupHandlerTestSuite) TestListGroups() {
	expected := []service.GroupResponse{
		{ID: uuid.New(), Name: "Thursday Five-a-side"},
		{ID: uuid.New(), Name: "Sunday League"},
	}

	suite.mockService.EXPECT().
		ListMine(suite.actorID).
		Return(expected, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/groups", nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response []service.GroupResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response, 2)
}

// TestUnauthenticated tests a request that never passed the auth middleware
func (suite *GroupHandlerTestSuite) TestUnauthenticated() {
	bare := gin.New()
	bare.GET("/groups", suite.handler.ListGroups)

	req := httptest.NewRequest(http.MethodGet, "/groups", nil)

	w := httptest.NewRecorder()
	bare.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

// Run the test suite
func TestGroupHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GroupHandlerTestSuite))
}
