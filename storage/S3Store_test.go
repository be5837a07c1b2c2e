package storage

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"skilltracker/config"
)

type mockS3 struct {
	mock.Mock
}

func (m *mockS3) HeadBucket(ctx context.Context, in *s3.HeadBucketInput, _ ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	args := m.Called(ctx, aws.ToString(in.Bucket))
	out, _ := args.Get(0).(*s3.HeadBucketOutput)
	return out, args.Error(1)
}

func (m *mockS3) CreateBucket(ctx context.Context, in *s3.CreateBucketInput, _ ...func(*s3.Options)) (*s3.CreateBucketOutput, error) {
	args := m.Called(ctx, aws.ToString(in.Bucket))
	out, _ := args.Get(0).(*s3.CreateBucketOutput)
	return out, args.Error(1)
}

func (m *mockS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	body, _ := io.ReadAll(in.Body)
	args := m.Called(ctx, aws.ToString(in.Key), aws.ToString(in.ContentType), string(body))
	out, _ := args.Get(0).(*s3.PutObjectOutput)
	return out, args.Error(1)
}

func (m *mockS3) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	args := m.Called(ctx, aws.ToString(in.Key))
	out, _ := args.Get(0).(*s3.DeleteObjectOutput)
	return out, args.Error(1)
}

func TestNewS3StoreWithAPI(t *testing.T) {
	ctx := context.Background()

	t.Run("bucket exists", func(t *testing.T) {
		api := &mockS3{}
		api.On("HeadBucket", ctx, "b").Return(&s3.HeadBucketOutput{}, nil)

		s, err := NewS3StoreWithAPI(ctx, api, "b", "root", "https://b.s3.eu-west-1.amazonaws.com")
		require.NoError(t, err)
		assert.Equal(t, "b", s.bucket)
		api.AssertNotCalled(t, "CreateBucket", mock.Anything, mock.Anything)
	})

	t.Run("bucket created", func(t *testing.T) {
		api := &mockS3{}
		api.On("HeadBucket", ctx, "b").Return(nil, errors.New("not found"))
		api.On("CreateBucket", ctx, "b").Return(&s3.CreateBucketOutput{}, nil)

		_, err := NewS3StoreWithAPI(ctx, api, "b", "root", "")
		require.NoError(t, err)
		api.AssertExpectations(t)
	})

	t.Run("create fails", func(t *testing.T) {
		api := &mockS3{}
		api.On("HeadBucket", ctx, "b").Return(nil, errors.New("not found"))
		api.On("CreateBucket", ctx, "b").Return(nil, errors.New("denied"))

		s, err := NewS3StoreWithAPI(ctx, api, "b", "root", "")
		assert.Nil(t, s)
		assert.ErrorContains(t, err, "could not be created")
	})
}

func TestS3Store_UploadAndDelete(t *testing.T) {
	ctx := context.Background()
	api := &mockS3{}
	s := &S3Store{api: api, bucket: "b", root: "skill-tracker", publicURL: "https://cdn.test"}

	api.On("PutObject", ctx, mock.AnythingOfType("string"), "application/pdf", "%PDF-1.4").
		Return(&s3.PutObjectOutput{}, nil).Once()

	media, err := s.Upload(ctx, FolderCertificates, File{Data: []byte("%PDF-1.4"), ContentType: "application/pdf"})
	require.NoError(t, err)
	assert.Regexp(t, `^skill-tracker/certificates/[0-9A-Za-z]{27}\.pdf$`, media.MediaID)
	assert.Equal(t, "https://cdn.test/"+media.MediaID, media.URL)

	api.On("DeleteObject", ctx, media.MediaID).Return(&s3.DeleteObjectOutput{}, nil).Once()
	require.NoError(t, s.Delete(ctx, media.MediaID))

	api.On("DeleteObject", ctx, "missing").Return(nil, errors.New("boom")).Once()
	assert.ErrorContains(t, s.Delete(ctx, "missing"), "failed to delete from S3")

	api.AssertExpectations(t)
}

func TestS3Store_UploadError(t *testing.T) {
	ctx := context.Background()
	api := &mockS3{}
	s := &S3Store{api: api, bucket: "b", root: "r", publicURL: "https://cdn.test"}

	api.On("PutObject", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("denied"))
	_, err := s.Upload(ctx, FolderAvatars, File{Data: []byte("x"), ContentType: "image/png"})
	assert.ErrorContains(t, err, "failed to upload to S3")
}

func TestNew_UnknownDriver(t *testing.T) {
	_, err := New(context.Background(), config.Media{Driver: "ftp"})
	assert.ErrorContains(t, err, "unsupported media driver")
}
