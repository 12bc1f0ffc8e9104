package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Carr-Ethan/cse108-Final/internal/constants"
	"github.com/Carr-Ethan/cse108-Final/internal/dto"
	"github.com/Carr-Ethan/cse108-Final/internal/models"
	"github.com/Carr-Ethan/cse108-Final/internal/repository"
	"github.com/Carr-Ethan/cse108-Final/internal/services"
)

// PostHandlerTestSuite defines the test suite for PostHandler
type PostHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *PostHandler
}

// SetupTest runs before each test
func (suite *PostHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.GroupMember{},
		&models.Post{},
	)
	suite.Require().NoError(err)

	postRepo := repository.NewPostRepository(suite.db)
	groupRepo := repository.NewGroupRepository(suite.db)
	suite.handler = NewPostHandler(services.NewPostService(postRepo, groupRepo))

	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test
func (suite *PostHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *PostHandlerTestSuite) createTestUser(username string) *models.User {
	user := &models.User{
		Username:     username,
		PasswordHash: "hashedpassword",
	}
	suite.db.Create(user)
	return user
}

func (suite *PostHandlerTestSuite) createTestGroup(name string, creatorID uint64) *models.Group {
	group := &models.Group{
		Name:      name,
		CreatorID: creatorID,
	}
	suite.db.Create(group)
	suite.db.Create(&models.GroupMember{GroupID: group.ID, UserID: creatorID, JoinedAt: time.Now()})
	return group
}

func (suite *PostHandlerTestSuite) createTestPost(name string, creatorID, groupID uint64) *models.Post {
	post := &models.Post{
		Name:       name,
		TimePosted: time.Now(),
		Deadline:   time.Now().Add(48 * time.Hour),
		Status:     models.PostStatusInProgress,
		CreatorID:  creatorID,
		GroupID:    groupID,
	}
	suite.db.Create(post)
	return post
}

func (suite *PostHandlerTestSuite) createAuthContext(method, url string, body []byte, userID uint64) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(constants.ContextKeyUserID, userID)

	return c, w
}

func (suite *PostHandlerTestSuite) TestCreatePost_Success() {
	user := suite.createTestUser("poster")
	group := suite.createTestGroup("g1", user.ID)

	body, _ := json.Marshal(map[string]string{
		"name":        "lab report",
		"description": "part two",
		"deadline":    "2030-01-01 00:00:00",
		"group_name":  "g1",
	})
	c, w := suite.createAuthContext("POST", "/posts", body, user.ID)

	suite.handler.CreatePost(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var post models.Post
	suite.Require().NoError(suite.db.Where("name = ?", "lab report").First(&post).Error)
	assert.Equal(suite.T(), group.ID, post.GroupID)
	assert.Equal(suite.T(), user.ID, post.CreatorID)
	assert.Equal(suite.T(), models.PostStatusInProgress, post.Status)
	assert.False(suite.T(), post.TimePosted.IsZero())

	want, err := time.ParseInLocation(constants.DeadlineTimeFormat, "2030-01-01 00:00:00", time.Local)
	suite.Require().NoError(err)
	assert.True(suite.T(), post.Deadline.Equal(want))
}

func (suite *PostHandlerTestSuite) TestCreatePost_MalformedDeadline() {
	user := suite.createTestUser("poster")
	suite.createTestGroup("g1", user.ID)

	body, _ := json.Marshal(map[string]string{
		"name":       "bad deadline",
		"deadline":   "2024-13-40 99:99:99",
		"group_name": "g1",
	})
	c, w := suite.createAuthContext("POST", "/posts", body, user.ID)

	suite.handler.CreatePost(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var count int64
	suite.db.Model(&models.Post{}).Count(&count)
	assert.EqualValues(suite.T(), 0, count, "no post row should exist after a rejected deadline")
}

func (suite *PostHandlerTestSuite) TestCreatePost_MissingFields() {
	user := suite.createTestUser("poster")
	suite.createTestGroup("g1", user.ID)

	body, _ := json.Marshal(map[string]string{
		"name":       "no deadline",
		"group_name": "g1",
	})
	c, w := suite.createAuthContext("POST", "/posts", body, user.ID)

	suite.handler.CreatePost(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *PostHandlerTestSuite) TestCreatePost_GroupNotFound() {
	user := suite.createTestUser("poster")

	body, _ := json.Marshal(map[string]string{
		"name":       "orphan",
		"deadline":   "2030-01-01 00:00:00",
		"group_name": "missing",
	})
	c, w := suite.createAuthContext("POST", "/posts", body, user.ID)

	suite.handler.CreatePost(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *PostHandlerTestSuite) TestListMyPosts_UnionAcrossMemberships() {
	owner := suite.createTestUser("owner")
	reader := suite.createTestUser("reader")
	g1 := suite.createTestGroup("g1", owner.ID)
	g2 := suite.createTestGroup("g2", owner.ID)
	g3 := suite.createTestGroup("g3", owner.ID)

	suite.db.Create(&models.GroupMember{GroupID: g1.ID, UserID: reader.ID, JoinedAt: time.Now()})
	suite.db.Create(&models.GroupMember{GroupID: g2.ID, UserID: reader.ID, JoinedAt: time.Now()})

	suite.createTestPost("in g1", owner.ID, g1.ID)
	suite.createTestPost("in g2", owner.ID, g2.ID)
	suite.createTestPost("in g3", owner.ID, g3.ID)

	c, w := suite.createAuthContext("GET", "/posts", nil, reader.ID)
	suite.handler.ListMyPosts(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var posts []dto.PostDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &posts))
	suite.Require().Len(posts, 2)

	names := []string{posts[0].Name, posts[1].Name}
	assert.ElementsMatch(suite.T(), []string{"in g1", "in g2"}, names)
}

func (suite *PostHandlerTestSuite) TestListMyPosts_NoMemberships() {
	loner := suite.createTestUser("loner")

	c, w := suite.createAuthContext("GET", "/posts", nil, loner.ID)
	suite.handler.ListMyPosts(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var posts []dto.PostDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &posts))
	assert.Empty(suite.T(), posts)
}

func (suite *PostHandlerTestSuite) TestListGroupPosts() {
	user := suite.createTestUser("poster")
	group := suite.createTestGroup("g1", user.ID)
	suite.createTestPost("p1", user.ID, group.ID)
	suite.createTestPost("p2", user.ID, group.ID)

	c, w := suite.createAuthContext("GET", "/posts/g1", nil, user.ID)
	c.Params = gin.Params{{Key: "groupName", Value: "g1"}}

	suite.handler.ListGroupPosts(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var posts []dto.PostDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &posts))
	assert.Len(suite.T(), posts, 2)
}

func (suite *PostHandlerTestSuite) TestListGroupPosts_GroupNotFound() {
	user := suite.createTestUser("poster")

	c, w := suite.createAuthContext("GET", "/posts/missing", nil, user.ID)
	c.Params = gin.Params{{Key: "groupName", Value: "missing"}}

	suite.handler.ListGroupPosts(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *PostHandlerTestSuite) TestUpdatePostStatus() {
	user := suite.createTestUser("poster")
	group := suite.createTestGroup("g1", user.ID)
	post := suite.createTestPost("p1", user.ID, group.ID)

	body, _ := json.Marshal(map[string]string{"status": "completed"})
	c, w := suite.createAuthContext("PATCH", "/posts/1", body, user.ID)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	suite.handler.UpdatePostStatus(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var updated models.Post
	suite.Require().NoError(suite.db.First(&updated, post.ID).Error)
	assert.Equal(suite.T(), models.PostStatusCompleted, updated.Status)
}

func (suite *PostHandlerTestSuite) TestUpdatePostStatus_UnknownStatus() {
	user := suite.createTestUser("poster")
	group := suite.createTestGroup("g1", user.ID)
	suite.createTestPost("p1", user.ID, group.ID)

	body, _ := json.Marshal(map[string]string{"status": "abandoned"})
	c, w := suite.createAuthContext("PATCH", "/posts/1", body, user.ID)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	suite.handler.UpdatePostStatus(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *PostHandlerTestSuite) TestUpdatePostStatus_NotAMember() {
	owner := suite.createTestUser("owner")
	outsider := suite.createTestUser("outsider")
	group := suite.createTestGroup("g1", owner.ID)
	post := suite.createTestPost("p1", owner.ID, group.ID)

	body, _ := json.Marshal(map[string]string{"status": "completed"})
	c, w := suite.createAuthContext("PATCH", "/posts/1", body, outsider.ID)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	suite.handler.UpdatePostStatus(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	var unchanged models.Post
	suite.Require().NoError(suite.db.First(&unchanged, post.ID).Error)
	assert.Equal(suite.T(), models.PostStatusInProgress, unchanged.Status)
}

func TestPostHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PostHandlerTestSuite))
}
