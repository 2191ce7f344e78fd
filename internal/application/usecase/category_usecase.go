package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/ticket-logger-api/internal/application/dto"
	"github.com/jhoicas/ticket-logger-api/internal/application/mapper"
	"github.com/jhoicas/ticket-logger-api/internal/application/ports"
	"github.com/jhoicas/ticket-logger-api/internal/application/validation"
	"github.com/jhoicas/ticket-logger-api/internal/domain"
	"github.com/jhoicas/ticket-logger-api/internal/domain/entity"
	"github.com/jhoicas/ticket-logger-api/internal/domain/repository"
	"github.com/jhoicas/ticket-logger-api/pkg/logger"
)

// CategoryUseCase casos de uso CRUD para categorías con imagen opcional.
// El árbol es plano: cada categoría solo conoce a su padre directo.
type CategoryUseCase struct {
	repo    repository.CategoryRepository
	storage ports.ImageStorage
	log     *logger.Logger
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, storage ports.ImageStorage, log *logger.Logger) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, storage: storage, log: log}
}

// toDTO mapea y convierte las referencias de imagen en URLs públicas.
func (uc *CategoryUseCase) toDTO(c *entity.Category) *dto.CategoryResponse {
	out := mapper.ToCategoryDTO(c)
	if out == nil {
		return nil
	}
	if out.Image != "" {
		out.Image = uc.storage.URL(out.Image)
	}
	if out.ParentCategory != nil && out.ParentCategory.Image != "" {
		out.ParentCategory.Image = uc.storage.URL(out.ParentCategory.Image)
	}
	return out
}

// List lista categorías con su padre resumido.
func (uc *CategoryUseCase) List(ctx context.Context, p dto.PageRequest) (*dto.CategoryListResponse, error) {
	p = page(p)
	list, err := uc.repo.List(ctx, p.Limit, p.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *uc.toDTO(v))
	}
	return &dto.CategoryListResponse{Items: items, Page: dto.PageResponse{Limit: p.Limit, Offset: p.Offset}}, nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NotFound(domain.MsgCategoryNotFound)
	}
	return uc.toDTO(c), nil
}

func (uc *CategoryUseCase) parent(ctx context.Context, id *int64) (*entity.Category, error) {
	if id == nil {
		return nil, nil
	}
	parent, err := uc.repo.GetByID(ctx, *id)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, domain.NotFound(domain.MsgCategoryParentNotFound)
	}
	return parent, nil
}

// checkCycle recorre la cadena de padres desde parent y falla si llega a id.
func (uc *CategoryUseCase) checkCycle(ctx context.Context, id int64, parent *entity.Category) error {
	seen := map[int64]bool{}
	cur := parent
	for cur != nil {
		if cur.ID == id || seen[cur.ID] {
			return domain.Invalid(domain.MsgCategoryParentCycle)
		}
		seen[cur.ID] = true
		if cur.ParentID == nil {
			return nil
		}
		next, err := uc.repo.GetByID(ctx, *cur.ParentID)
		if err != nil {
			return err
		}
		cur = next
	}
	return nil
}

// checkImage rechaza como entrada inválida un archivo sin extensión de imagen.
func checkImage(img *dto.ImageUpload) error {
	if img == nil {
		return nil
	}
	if _, err := ports.ImageExt(img.Filename); err != nil {
		return domain.Invalid(domain.MsgCategoryImageType)
	}
	return nil
}

func (uc *CategoryUseCase) saveImage(ctx context.Context, img *dto.ImageUpload) (string, error) {
	ref, err := uc.storage.Save(ctx, img.Filename, img.ContentType, img.Size, img.Content)
	if errors.Is(err, ports.ErrUnsupportedImage) {
		return "", domain.Invalid(domain.MsgCategoryImageType)
	}
	if err != nil {
		uc.log.Error().Err(err).Str("filename", img.Filename).Msg("error guardando imagen de categoría")
		return "", domain.Storage(domain.MsgCategoryImageSave)
	}
	return ref, nil
}

// discardImage borra una imagen recién guardada cuando la escritura de la fila falla.
func (uc *CategoryUseCase) discardImage(ctx context.Context, ref string) {
	if ref == "" {
		return
	}
	if err := uc.storage.Delete(ctx, ref); err != nil {
		uc.log.Warn().Err(err).Str("image", ref).Msg("imagen huérfana tras fallo de escritura")
	}
}

// Create crea una categoría. img puede ser nil.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest, img *dto.ImageUpload) (*dto.CategoryResponse, error) {
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}
	if err := checkImage(img); err != nil {
		return nil, err
	}
	exists, err := uc.repo.ExistsByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.Duplicate(domain.MsgCategoryNameExists)
	}
	parent, err := uc.parent(ctx, in.ParentCategoryID)
	if err != nil {
		return nil, err
	}

	c := mapper.ToCategoryEntity(&in, parent)
	if img != nil {
		if c.Image, err = uc.saveImage(ctx, img); err != nil {
			return nil, err
		}
	}
	now := time.Now()
	c.CreatedAt, c.UpdatedAt = now, now
	if err := uc.repo.Create(ctx, c); err != nil {
		uc.discardImage(ctx, c.Image)
		return nil, asDuplicate(err, domain.MsgCategoryNameExists)
	}
	uc.log.Info().Int64("id", c.ID).Str("image", c.Image).Msg("categoría creada")
	return uc.toDTO(c), nil
}

// Update reemplaza nombre y padre. Si llega imagen nueva, la anterior se borra antes de guardarla;
// sin imagen nueva se conserva la actual.
func (uc *CategoryUseCase) Update(ctx context.Context, id int64, in dto.CreateCategoryRequest, img *dto.ImageUpload) (*dto.CategoryResponse, error) {
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}
	if err := checkImage(img); err != nil {
		return nil, err
	}
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NotFound(domain.MsgCategoryNotFound)
	}
	exists, err := uc.repo.ExistsByNameAndNotID(ctx, in.Name, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.Duplicate(domain.MsgCategoryNameExists)
	}
	parent, err := uc.parent(ctx, in.ParentCategoryID)
	if err != nil {
		return nil, err
	}
	if err := uc.checkCycle(ctx, id, parent); err != nil {
		return nil, err
	}

	var newImage string
	if img != nil {
		oldDeleted := false
		if c.Image != "" {
			if err := uc.storage.Delete(ctx, c.Image); err != nil {
				uc.log.Error().Err(err).Str("image", c.Image).Msg("error borrando imagen anterior")
				return nil, domain.Storage(domain.MsgCategoryImageDelete)
			}
			c.Image = ""
			oldDeleted = true
		}
		if newImage, err = uc.saveImage(ctx, img); err != nil {
			// La imagen anterior ya no existe: la fila no puede seguir apuntando a ella.
			if oldDeleted {
				if uerr := uc.repo.Update(ctx, c); uerr != nil {
					uc.log.Error().Err(uerr).Int64("id", id).Msg("error limpiando referencia de imagen")
				}
			}
			return nil, err
		}
		c.Image = newImage
	}

	c.Name = in.Name
	c.ParentID = nil
	c.Parent = parent
	if parent != nil {
		pid := parent.ID
		c.ParentID = &pid
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		uc.discardImage(ctx, newImage)
		return nil, asDuplicate(err, domain.MsgCategoryNameExists)
	}
	uc.log.Info().Int64("id", id).Msg("categoría actualizada")
	return uc.toDTO(c), nil
}

// Delete borra la imagen asociada (una sola vez) y después la fila.
// Una categoría con hijas no se puede borrar.
func (uc *CategoryUseCase) Delete(ctx context.Context, id int64) error {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.NotFound(domain.MsgCategoryNotFound)
	}
	children, err := uc.repo.ListByParent(ctx, id)
	if err != nil {
		return err
	}
	if len(children) > 0 {
		return domain.InUse(domain.MsgInUse)
	}
	if c.Image != "" {
		if err := uc.storage.Delete(ctx, c.Image); err != nil {
			uc.log.Error().Err(err).Str("image", c.Image).Msg("error borrando imagen de categoría")
			return domain.Storage(domain.MsgCategoryImageDelete)
		}
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return asInUse(err)
	}
	uc.log.Info().Int64("id", id).Msg("categoría eliminada")
	return nil
}
