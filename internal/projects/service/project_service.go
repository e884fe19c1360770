package service

import (
	"fmt"
	"log"
	"mime/multipart"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tidewater-lab/site-backend/internal/projects/domain"
	"github.com/tidewater-lab/site-backend/internal/projects/images"
	"github.com/tidewater-lab/site-backend/internal/projects/repository"
	"github.com/tidewater-lab/site-backend/internal/uploads"
)

// MaxImagesPerRequest caps how many files one create/update may attach.
const MaxImagesPerRequest = 10

// ProjectService orchestrates project CRUD over the snapshot store and the
// uploads manager. Every mutation is load snapshot, compute, save.
type ProjectService struct {
	store *repository.Store
	files *uploads.Manager
}

func New(store *repository.Store, files *uploads.Manager) *ProjectService {
	return &ProjectService{store: store, files: files}
}

type CreateInput struct {
	Title        string
	Summary      string
	Date         string
	Results      string
	Purpose      string
	OutcomesText string
	Files        []*multipart.FileHeader
}

type UpdateInput struct {
	Title        *string
	Summary      *string
	Date         *string
	Results      *string
	Purpose      *string
	OutcomesText *string
	RemoveImages []string
	MakePrimary  string
	Files        []*multipart.FileHeader
}

// List returns every record, newest first: user-supplied date descending,
// creation time as the fallback key.
func (s *ProjectService) List() []domain.ProjectRecord {
	records := s.store.Load()
	sort.Slice(records, func(i, j int) bool {
		return records[i].SortTime().After(records[j].SortTime())
	})
	return records
}

// Get returns the record with the given id.
func (s *ProjectService) Get(id string) (domain.ProjectRecord, error) {
	for _, p := range s.store.Load() {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.ProjectRecord{}, domain.ErrNotFound
}

// Create validates required fields, stores the uploaded files and appends
// the new record to the snapshot.
func (s *ProjectService) Create(in CreateInput) (domain.ProjectRecord, error) {
	required := []struct{ field, value string }{
		{"title", in.Title},
		{"summary", in.Summary},
		{"date", in.Date},
		{"results", in.Results},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return domain.ProjectRecord{}, fmt.Errorf("%w: %s", domain.ErrValidation, r.field)
		}
	}

	p := domain.ProjectRecord{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Summary:   in.Summary,
		Purpose:   in.Purpose,
		Results:   in.Results,
		Date:      in.Date,
		Outcomes:  domain.SplitLeaders(in.OutcomesText),
		Images:    s.storeFiles(in.Files),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	records := append(s.store.Load(), p)
	if err := s.store.Save(records); err != nil {
		return domain.ProjectRecord{}, err
	}
	return p, nil
}

// Update merges the present fields into the record and applies image
// mutations in the fixed order remove → append new → make-primary, so a
// just-uploaded file can be promoted to primary in the same request.
func (s *ProjectService) Update(id string, in UpdateInput) (domain.ProjectRecord, error) {
	records := s.store.Load()
	idx := -1
	for i := range records {
		if records[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.ProjectRecord{}, domain.ErrNotFound
	}

	p := &records[idx]
	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Summary != nil {
		p.Summary = *in.Summary
	}
	if in.Date != nil {
		p.Date = *in.Date
	}
	if in.Results != nil {
		p.Results = *in.Results
	}
	if in.Purpose != nil {
		p.Purpose = *in.Purpose
	}
	if in.OutcomesText != nil {
		p.Outcomes = domain.SplitLeaders(*in.OutcomesText)
	}

	kept, removed := images.Remove(p.Images, in.RemoveImages)
	for _, ref := range removed {
		s.files.Remove(ref)
	}
	kept = append(kept, s.storeFiles(in.Files)...)
	p.Images = images.MakePrimary(kept, in.MakePrimary)

	if err := s.store.Save(records); err != nil {
		return domain.ProjectRecord{}, err
	}
	return *p, nil
}

// Delete removes the record and best-effort deletes every referenced file.
// It returns the removed record.
func (s *ProjectService) Delete(id string) (domain.ProjectRecord, error) {
	records := s.store.Load()
	for i := range records {
		if records[i].ID != id {
			continue
		}

		deleted := records[i]
		for _, ref := range deleted.Images {
			s.files.Remove(ref)
		}

		records = append(records[:i], records[i+1:]...)
		if err := s.store.Save(records); err != nil {
			return domain.ProjectRecord{}, err
		}
		return deleted, nil
	}
	return domain.ProjectRecord{}, domain.ErrNotFound
}

// storeFiles writes the uploaded batch, capped at MaxImagesPerRequest, and
// returns the new references in upload order. A file that fails to store is
// skipped so the rest of the batch still lands.
func (s *ProjectService) storeFiles(files []*multipart.FileHeader) []string {
	if len(files) > MaxImagesPerRequest {
		files = files[:MaxImagesPerRequest]
	}

	refs := make([]string, 0, len(files))
	for _, fh := range files {
		ref, err := s.files.Store(fh)
		if err != nil {
			log.Printf("projects: failed to store upload %s: %v", fh.Filename, err)
			continue
		}
		refs = append(refs, ref)
	}
	return refs
}
