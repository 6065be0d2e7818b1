package services

import (
	"context"

	"talentsite_backend/internal/logger"
	"talentsite_backend/internal/models"
	"talentsite_backend/internal/repositories"
	"talentsite_backend/internal/storage"
)

// Reconciler сверяет каталоги хранилища с живыми ссылками в базе и
// удаляет файлы, на которые не ссылается ни одна строка. Направление
// строго одно: файл без ссылки удаляется, ссылка без файла не трогается.
type Reconciler interface {
	ReconcileKind(ctx context.Context, kind models.SlotKind) (removed int, err error)
	ReconcileAll(ctx context.Context) error
}

type reconciler struct {
	storage      storage.Storage
	home         repositories.HomeRepository
	categories   repositories.CategoryRepository
	talents      repositories.TalentRepository
	testimonials repositories.TestimonialRepository
}

func NewReconciler(
	st storage.Storage,
	home repositories.HomeRepository,
	categories repositories.CategoryRepository,
	talents repositories.TalentRepository,
	testimonials repositories.TestimonialRepository,
) Reconciler {
	return &reconciler{
		storage:      st,
		home:         home,
		categories:   categories,
		talents:      talents,
		testimonials: testimonials,
	}
}

func (r *reconciler) liveRefs(ctx context.Context, kind models.SlotKind) ([]string, error) {
	switch kind {
	case models.SlotHomeVideo:
		return r.home.LiveVideoRefs(ctx)
	case models.SlotBanner:
		return r.home.LiveBannerRefs(ctx)
	case models.SlotCategory:
		return r.categories.LiveAvatars(ctx)
	case models.SlotFeaturedTalent:
		return r.talents.LiveImages(ctx)
	case models.SlotTestimonial:
		return r.testimonials.LiveAvatars(ctx)
	default:
		return nil, nil
	}
}

func (r *reconciler) ReconcileKind(ctx context.Context, kind models.SlotKind) (int, error) {
	desc, ok := models.DescriptorFor(kind)
	if !ok {
		return 0, nil
	}

	// Сначала база, потом каталог: файл, загруженный между этими двумя
	// чтениями, выглядел бы сиротой, хотя его ссылка вот-вот запишется.
	// Обратный порядок дает только ложных "живых", что безопасно.
	refs, err := r.liveRefs(ctx, kind)
	if err != nil {
		return 0, err
	}

	live := make(map[string]struct{}, len(refs))
	for _, ref := range refs {
		live[ref] = struct{}{}
	}

	files, err := r.storage.List(ctx, desc.Dir)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, name := range files {
		if _, ok := live[name]; ok {
			continue
		}
		if err := r.storage.Delete(ctx, desc.Dir+"/"+name); err != nil {
			logger.CtxWithError(ctx, err).Warn("failed to remove orphan file",
				"kind", string(kind), "file", name)
			continue
		}
		removed++
	}

	if removed > 0 {
		logger.CtxInfo(ctx, "removed orphan files", "kind", string(kind), "count", removed)
	}
	return removed, nil
}

func (r *reconciler) ReconcileAll(ctx context.Context) error {
	var firstErr error
	for _, kind := range models.SlotKinds() {
		if _, err := r.ReconcileKind(ctx, kind); err != nil {
			logger.CtxWithError(ctx, err).Error("reconciliation failed", "kind", string(kind))
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
