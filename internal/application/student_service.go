package application

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/aulatrack/attendance-api/internal/domain/entity"
	repo "github.com/aulatrack/attendance-api/internal/domain/repository"
	"github.com/aulatrack/attendance-api/pkg/helpers"
)

var ErrStudentNotFound = errors.New("alumno no encontrado")

// StudentService manages students, their enrollment, search indexing and
// photo storage.
type StudentService struct {
	Repo            repo.StudentRepository
	Groups          repo.GroupRepository
	GCS             *storage.Client
	GCSBucket       string
	ES              *elasticsearch.Client
	ESStudentsIndex string
	Logger          *logrus.Logger
}

func NewStudentService(r repo.StudentRepository, groups repo.GroupRepository, gcs *storage.Client, gcsBucket string, es *elasticsearch.Client, esStudentsIndex string, logger *logrus.Logger) *StudentService {
	return &StudentService{
		Repo:            r,
		Groups:          groups,
		GCS:             gcs,
		GCSBucket:       gcsBucket,
		ES:              es,
		ESStudentsIndex: esStudentsIndex,
		Logger:          logger,
	}
}

type StudentInput struct {
	FirstName string
	LastName  string
	Email     string
}

// CreateInGroup inserts the student and then links it to the group. The two
// writes are dependent but not transactional; a failed enrollment leaves a
// valid unenrolled student.
func (s *StudentService) CreateInGroup(ctx context.Context, groupID string, in StudentInput) (*entity.Student, error) {
	if _, err := s.Groups.GetByID(groupID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}
	st := &entity.Student{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
	}
	if err := s.Repo.Create(st); err != nil {
		return nil, err
	}
	if err := s.Groups.Enroll(groupID, st.ID); err != nil {
		return nil, err
	}
	_ = s.index(ctx, st)
	return st, nil
}

func (s *StudentService) Update(ctx context.Context, id string, in StudentInput) (*entity.Student, error) {
	st, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	if in.FirstName != "" {
		st.FirstName = in.FirstName
	}
	if in.LastName != "" {
		st.LastName = in.LastName
	}
	if in.Email != "" {
		st.Email = in.Email
	}
	if err := s.Repo.Update(st); err != nil {
		return nil, err
	}
	_ = s.index(ctx, st)
	return st, nil
}

func (s *StudentService) GetByID(id string) (*entity.Student, error) {
	st, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return st, nil
}

func (s *StudentService) ListAll() ([]entity.Student, error) {
	return s.Repo.ListAll()
}

func (s *StudentService) ListByGroup(groupID string) ([]entity.Student, error) {
	if _, err := s.Groups.GetByID(groupID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}
	return s.Repo.ListByGroup(groupID)
}

// UploadPhoto stores the photo in GCS and saves its public URL on the student.
func (s *StudentService) UploadPhoto(ctx context.Context, id string, r io.Reader, filename, contentType string) (string, error) {
	st, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", ErrStudentNotFound
		}
		return "", err
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("gcs not configured")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("students", id, uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", err
	}
	st.PhotoURL = url
	if err := s.Repo.Update(st); err != nil {
		return "", err
	}
	_ = s.index(ctx, st)
	return url, nil
}

func (s *StudentService) index(ctx context.Context, st *entity.Student) error {
	if s.ES == nil || s.ESStudentsIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":         st.ID,
		"nombre":     st.FirstName,
		"apellido":   st.LastName,
		"correo":     st.Email,
		"updated_at": st.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESStudentsIndex, DocumentID: st.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("student_id", st.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("student_id", st.ID).Warn("es index response error")
	}
	return nil
}

// Search performs a multi_match query over name and email fields.
func (s *StudentService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESStudentsIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"nombre^2", "apellido^2", "correo"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.ESStudentsIndex), s.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
