package service

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/alexanderramin/fulfill/internal/domain"
	"github.com/alexanderramin/fulfill/internal/repository"
)

// MaxAttachmentSize caps the bytes Attach will store.
const MaxAttachmentSize = 25 << 20

type attachmentService struct {
	gateway  *repository.Gateway
	blobs    repository.BlobStore
	uow      repository.UnitOfWork
	observer UseCaseObserver
}

func NewAttachmentService(
	gateway *repository.Gateway,
	blobs repository.BlobStore,
	uow repository.UnitOfWork,
	observers ...UseCaseObserver,
) AttachmentService {
	return &attachmentService{
		gateway:  gateway,
		blobs:    blobs,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *attachmentService) Attach(ctx context.Context, clientID, name, contentType string, r io.Reader) (att *domain.Attachment, err error) {
	fields := map[string]any{"client_id": clientID, "name": name}
	defer observe(ctx, s.observer, "attach-file", fields, &err)()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &domain.ValidationError{Field: "name", Message: "is required"}
	}
	data, err := io.ReadAll(io.LimitReader(r, MaxAttachmentSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading attachment: %w", err)
	}
	if len(data) > MaxAttachmentSize {
		return nil, &domain.ValidationError{Field: "file", Message: fmt.Sprintf("exceeds %d MiB", MaxAttachmentSize>>20)}
	}
	fields["size"] = len(data)

	a := domain.Attachment{
		ID:          domain.AttachmentID(nowUTC()),
		Name:        name,
		BlobKey:     uuid.NewString(),
		ContentType: contentType,
		Size:        int64(len(data)),
	}
	_, err = mutateClient(ctx, s.uow, clientID, func(ctx context.Context, tx repository.Tx, c domain.Client) (domain.Client, error) {
		if err := tx.Blobs.Put(ctx, a.BlobKey, a.ContentType, data); err != nil {
			return c, err
		}
		return domain.SetAttachments(c, append(c.Attachments, a)), nil
	})
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *attachmentService) Link(ctx context.Context, clientID, name, rawURL string) (*domain.Attachment, error) {
	u, err := url.ParseRequestURI(strings.TrimSpace(rawURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, &domain.ValidationError{Field: "url", Message: "must be an absolute URL"}
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = u.String()
	}
	a := domain.Attachment{
		ID:   domain.AttachmentID(nowUTC()),
		Name: name,
		URL:  u.String(),
	}
	_, err = mutateClient(ctx, s.uow, clientID, func(_ context.Context, _ repository.Tx, c domain.Client) (domain.Client, error) {
		return domain.SetAttachments(c, append(c.Attachments, a)), nil
	})
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *attachmentService) Rename(ctx context.Context, clientID, attachmentID, name string) (*domain.Attachment, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &domain.ValidationError{Field: "name", Message: "is required"}
	}
	var renamed domain.Attachment
	_, err := mutateClient(ctx, s.uow, clientID, func(_ context.Context, _ repository.Tx, c domain.Client) (domain.Client, error) {
		list := append([]domain.Attachment(nil), c.Attachments...)
		for i := range list {
			if list[i].ID == attachmentID {
				list[i].Name = name
				renamed = list[i]
				return domain.SetAttachments(c, list), nil
			}
		}
		return c, &domain.NotFoundError{Kind: "attachment", ID: attachmentID}
	})
	if err != nil {
		return nil, err
	}
	return &renamed, nil
}

func (s *attachmentService) Remove(ctx context.Context, clientID, attachmentID string) error {
	_, err := mutateClient(ctx, s.uow, clientID, func(ctx context.Context, tx repository.Tx, c domain.Client) (domain.Client, error) {
		a, ok := c.Attachment(attachmentID)
		if !ok {
			return c, &domain.NotFoundError{Kind: "attachment", ID: attachmentID}
		}
		if a.Stored() {
			if err := tx.Blobs.Delete(ctx, a.BlobKey); err != nil {
				return c, err
			}
		}
		kept := make([]domain.Attachment, 0, len(c.Attachments)-1)
		for _, other := range c.Attachments {
			if other.ID != attachmentID {
				kept = append(kept, other)
			}
		}
		return domain.SetAttachments(c, kept), nil
	})
	return err
}

// Open returns the stored bytes of an attachment. Link attachments have no
// bytes and report a validation error naming their URL.
func (s *attachmentService) Open(ctx context.Context, clientID, attachmentID string) (*repository.Blob, error) {
	clients, i, err := findClient(ctx, s.gateway, clientID)
	if err != nil {
		return nil, err
	}
	a, ok := clients[i].Attachment(attachmentID)
	if !ok {
		return nil, &domain.NotFoundError{Kind: "attachment", ID: attachmentID}
	}
	if !a.Stored() {
		return nil, &domain.ValidationError{Field: "attachment", Message: "is a link to " + a.URL}
	}
	return s.blobs.Get(ctx, a.BlobKey)
}
