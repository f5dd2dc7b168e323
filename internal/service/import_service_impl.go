package service

import (
	"context"
	"fmt"
	"io"

	"github.com/alexanderramin/fulfill/internal/domain"
	"github.com/alexanderramin/fulfill/internal/importer"
	"github.com/alexanderramin/fulfill/internal/repository"
)

type importService struct {
	uow      repository.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(uow repository.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *importService) ImportFile(ctx context.Context, path string) (*ImportResult, error) {
	rows, err := importer.LoadImportFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.importRows(ctx, rows)
}

func (s *importService) ImportCSV(ctx context.Context, r io.Reader) (*ImportResult, error) {
	rows, err := importer.ReadRows(r)
	if err != nil {
		return nil, err
	}
	return s.importRows(ctx, rows)
}

// importRows appends every eligible row as a new client in one save.
func (s *importService) importRows(ctx context.Context, rows []importer.ImportRow) (res *ImportResult, err error) {
	fields := map[string]any{"rows": len(rows)}
	defer observe(ctx, s.observer, "import-csv", fields, &err)()

	converted := importer.Convert(rows, nowUTC())
	fields["imported"] = len(converted.Clients)
	fields["skipped"] = len(converted.Skipped)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		existing, err := tx.Gateway.LoadClients(ctx)
		if err != nil {
			return err
		}
		taken := idTaken(existing, func(c domain.Client) string { return c.ID })
		for i := range converted.Clients {
			for taken(converted.Clients[i].ID) {
				converted.Clients[i].ID += "0"
			}
		}
		if len(converted.Clients) == 0 {
			return nil
		}
		if err := tx.Gateway.SaveClients(ctx, append(existing, converted.Clients...)); err != nil {
			return fmt.Errorf("saving imported clients: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ImportResult{Imported: converted.Clients, Skipped: converted.Skipped}, nil
}
