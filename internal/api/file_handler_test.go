package api

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/vehicle-assess-api/internal/api/dto"
	"github.com/kingrain94/vehicle-assess-api/internal/domain"
	"github.com/kingrain94/vehicle-assess-api/internal/service"
)

type MockFileService struct {
	mock.Mock
}

func (m *MockFileService) Upload(ctx context.Context, in service.UploadInput) (*domain.File, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.File), args.Error(1)
}

func (m *MockFileService) Get(ctx context.Context, tenantID, fileID string) (*domain.File, error) {
	args := m.Called(ctx, tenantID, fileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.File), args.Error(1)
}

func (m *MockFileService) GetURL(ctx context.Context, tenantID, fileID string) (*string, error) {
	args := m.Called(ctx, tenantID, fileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*string), args.Error(1)
}

func (m *MockFileService) List(ctx context.Context, filter domain.FileFilter) ([]domain.File, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.File), args.Error(1)
}

func (m *MockFileService) Delete(ctx context.Context, tenantID, fileID string) error {
	args := m.Called(ctx, tenantID, fileID)
	return args.Error(0)
}

type FileHandlerTestSuite struct {
	suite.Suite
	mockService *MockFileService
	handler     *FileHandler
}

func (s *FileHandlerTestSuite) SetupTest() {
	s.mockService = new(MockFileService)
	s.handler = NewFileHandler(s.mockService, 1024)
}

func TestFileHandler(t *testing.T) {
	suite.Run(t, new(FileHandlerTestSuite))
}

func multipartBody(s *FileHandlerTestSuite, fileName string, content []byte) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", fileName)
	s.Require().NoError(err)
	_, err = part.Write(content)
	s.Require().NoError(err)
	s.Require().NoError(writer.WriteField("category", "vehicle_photo"))
	s.Require().NoError(writer.Close())
	return body, writer.FormDataContentType()
}

func (s *FileHandlerTestSuite) TestUploadFile_Success() {
	// Arrange
	body, contentType := multipartBody(s, "front.jpg", []byte("jpeg-bytes"))
	s.mockService.On("Upload", mock.Anything, mock.MatchedBy(func(in service.UploadInput) bool {
		return in.TenantID == "tenant1" && in.UploaderID == "user1" &&
			in.FileName == "front.jpg" && in.Category == "vehicle_photo" && in.Size == 10
	})).Return(&domain.File{ID: "file1", TenantID: "tenant1", FileName: "front.jpg", Size: 10}, nil)

	c, w := newTestContext(http.MethodPost, "/api/v1/files", nil)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/files", body)
	c.Request.Header.Set("Content-Type", contentType)
	authenticate(c, "tenant1", "user1", "staff")

	// Act
	s.handler.UploadFile(c)

	// Assert
	s.Equal(http.StatusCreated, w.Code)
	var response dto.FileResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("file1", response.ID)
	s.Equal("10 Bytes", response.SizeFormatted)
	s.mockService.AssertExpectations(s.T())
}

func (s *FileHandlerTestSuite) TestUploadFile_TooLarge() {
	body, contentType := multipartBody(s, "big.bin", bytes.Repeat([]byte("x"), 2048))

	c, w := newTestContext(http.MethodPost, "/api/v1/files", nil)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/files", body)
	c.Request.Header.Set("Content-Type", contentType)
	authenticate(c, "tenant1", "user1", "staff")

	s.handler.UploadFile(c)

	s.Equal(http.StatusRequestEntityTooLarge, w.Code)
	s.Contains(w.Body.String(), "exceeds 1 KB")
	s.mockService.AssertNotCalled(s.T(), "Upload", mock.Anything, mock.Anything)
}

func (s *FileHandlerTestSuite) TestUploadFile_MissingFile() {
	c, w := newTestContext(http.MethodPost, "/api/v1/files", `{}`)
	authenticate(c, "tenant1", "user1", "staff")

	s.handler.UploadFile(c)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *FileHandlerTestSuite) TestGetFile_CrossTenant() {
	s.mockService.On("Get", mock.Anything, "tenant1", "file2").Return(nil, service.ErrCrossTenantAccess)

	c, w := newTestContext(http.MethodGet, "/api/v1/files/file2", nil)
	c.AddParam("id", "file2")
	authenticate(c, "tenant1", "user1")
	s.handler.GetFile(c)

	s.Equal(http.StatusForbidden, w.Code)
}

func (s *FileHandlerTestSuite) TestGetFileURL_NullURL() {
	s.mockService.On("GetURL", mock.Anything, "tenant1", "not-a-uuid").Return((*string)(nil), nil)

	c, w := newTestContext(http.MethodGet, "/api/v1/files/not-a-uuid/url", nil)
	c.AddParam("id", "not-a-uuid")
	authenticate(c, "tenant1", "user1")
	s.handler.GetFileURL(c)

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"url":null}`, w.Body.String())
}

func (s *FileHandlerTestSuite) TestListFiles_DefaultLimit() {
	s.mockService.On("List", mock.Anything, domain.FileFilter{TenantID: "tenant1", BookingID: "b1", Limit: 50}).
		Return([]domain.File{{ID: "file1"}}, nil)

	c, w := newTestContext(http.MethodGet, "/api/v1/files?booking_id=b1", nil)
	authenticate(c, "tenant1", "user1")
	s.handler.ListFiles(c)

	s.Equal(http.StatusOK, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *FileHandlerTestSuite) TestDeleteFile_NotFound() {
	s.mockService.On("Delete", mock.Anything, "tenant1", "missing").Return(service.ErrFileNotFound)

	c, w := newTestContext(http.MethodDelete, "/api/v1/files/missing", nil)
	c.AddParam("id", "missing")
	authenticate(c, "tenant1", "user1", "staff")
	s.handler.DeleteFile(c)

	s.Equal(http.StatusNotFound, w.Code)
}
