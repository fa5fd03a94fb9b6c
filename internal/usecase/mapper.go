package usecase

import (
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/pitchmetrics/pitchmetrics/internal/domain/refdata"
	"github.com/pitchmetrics/pitchmetrics/internal/platform/logging"
)

// ImageResolver is the auxiliary lookup mappers use for entity images.
// Implementations return "" on failure; a missing image never aborts a
// mapping.
type ImageResolver interface {
	EntityImage(kind string, id int64) string
}

type noopImageResolver struct{}

func (noopImageResolver) EntityImage(string, int64) string { return "" }

// Mapper turns raw provider payloads into canonical records. It is
// stateless apart from its injected collaborators.
type Mapper struct {
	images ImageResolver
	pool   *ants.Pool
	logger *logging.Logger
}

func NewMapper(images ImageResolver, pool *ants.Pool, logger *logging.Logger) *Mapper {
	if images == nil {
		images = noopImageResolver{}
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Mapper{images: images, pool: pool, logger: logger}
}

type imageRequest struct {
	kind string
	id   int64
}

// tournamentName trusts the provider's name and consults the static
// league table only when the payload omits it.
func tournamentName(id int64, provided string) string {
	if provided != "" {
		return provided
	}
	return refdata.LookupName(id, "")
}

// lookupImages resolves several entity images concurrently through the
// worker pool. Order of results matches the order of requests; every
// failure degrades to "".
func (m *Mapper) lookupImages(requests []imageRequest) []string {
	results := make([]string, len(requests))
	if len(requests) == 0 {
		return results
	}

	var wg sync.WaitGroup
	for i, req := range requests {
		i, req := i, req
		task := func() {
			defer wg.Done()
			results[i] = m.images.EntityImage(req.kind, req.id)
		}

		wg.Add(1)
		if m.pool != nil {
			if err := m.pool.Submit(task); err == nil {
				continue
			}
		}
		task()
	}
	wg.Wait()

	return results
}
