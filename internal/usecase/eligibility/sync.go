package eligibility

import (
	"context"
	"errors"
	"fmt"

	"github.com/yatradesk/tourism-directory-backend/internal/domain"
)

const syncBatchSize = 100

// SyncError records a single record's failure during a directory sync.
type SyncError struct {
	UserID      string             `json:"user_id"`
	PassionType domain.PassionType `json:"passion_type"`
	Message     string             `json:"message"`
}

// SyncReport summarizes a best-effort sync pass. Records synced before a
// failure stay synced; re-running is safe because the upserts are idempotent.
type SyncReport struct {
	Synced int         `json:"synced"`
	Hidden int         `json:"hidden"`
	Errors []SyncError `json:"errors"`
}

// SyncAllListings walks every active guide and hotel record sequentially,
// re-checks eligibility and upserts the corresponding listing. Profiles that
// fail the checklist get their listing hidden rather than deleted.
func (uc *UseCase) SyncAllListings(ctx context.Context) (*SyncReport, error) {
	report := &SyncReport{}

	offset := 0
	for {
		guides, err := uc.guideRepo.ListActive(ctx, syncBatchSize, offset)
		if err != nil {
			return nil, fmt.Errorf("failed to list guides: %w", err)
		}
		for _, guide := range guides {
			uc.syncRecord(ctx, report, guide.UserID, domain.PassionTourGuide, guide.IsComplete())
		}
		if len(guides) < syncBatchSize {
			break
		}
		offset += syncBatchSize
	}

	offset = 0
	for {
		hotels, err := uc.hotelRepo.ListActive(ctx, syncBatchSize, offset)
		if err != nil {
			return nil, fmt.Errorf("failed to list hotels: %w", err)
		}
		for _, hotel := range hotels {
			uc.syncRecord(ctx, report, hotel.UserID, domain.PassionHotelPartner, hotel.IsComplete())
		}
		if len(hotels) < syncBatchSize {
			break
		}
		offset += syncBatchSize
	}

	return report, nil
}

func (uc *UseCase) syncRecord(ctx context.Context, report *SyncReport, userID string, passion domain.PassionType, complete bool) {
	if complete {
		// An existing listing keeps the user's own state: visibility they
		// toggled, keywords, featured flag and priority all survive a sync.
		listing, err := uc.listingRepo.Get(ctx, userID, passion)
		if err != nil {
			if !errors.Is(err, domain.ErrListingNotFound) {
				report.Errors = append(report.Errors, SyncError{
					UserID:      userID,
					PassionType: passion,
					Message:     err.Error(),
				})
				return
			}
			listing = &domain.DirectoryListing{
				UserID:      userID,
				PassionType: passion,
				IsVisible:   true,
			}
		}
		if err := uc.listingRepo.Upsert(ctx, listing); err != nil {
			report.Errors = append(report.Errors, SyncError{
				UserID:      userID,
				PassionType: passion,
				Message:     err.Error(),
			})
			return
		}
		report.Synced++
		return
	}

	// Incomplete profiles must not stay discoverable.
	if _, err := uc.listingRepo.SetVisibility(ctx, userID, passion, false); err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			return
		}
		report.Errors = append(report.Errors, SyncError{
			UserID:      userID,
			PassionType: passion,
			Message:     err.Error(),
		})
		return
	}
	report.Hidden++
}
