package editor

import (
	"context"
	"fmt"

	"github.com/zeusync/behave/internal/core/custom"
	"github.com/zeusync/behave/internal/core/gui"
	"github.com/zeusync/behave/internal/core/models"
	"github.com/zeusync/behave/internal/core/system"
	"github.com/zeusync/behave/internal/scene"
)

func (s *Server) handle(ctx context.Context, req Request) Response {
	result, err := s.dispatch(ctx, req)
	if err != nil {
		return Response{ID: req.ID, Error: err.Error(), Code: errorCode(err)}
	}
	return Response{ID: req.ID, OK: true, Result: result}
}

func (s *Server) dispatch(ctx context.Context, req Request) (any, error) {
	switch req.Op {
	case OpTypes:
		return s.world.Library().TypeNames(), nil
	case OpValidate:
		if err := s.world.Library().Check(req.Config); err != nil {
			return ValidateResult{Valid: false, Reason: err.Error()}, nil
		}
		return ValidateResult{Valid: true}, nil
	case OpSpawn:
		return s.spawn(ctx, req)
	case OpInspect:
		return s.controls(ctx, req.Entity, nil)
	case OpEdit:
		if len(req.Edits) == 0 {
			return nil, fmt.Errorf("%w: edit needs edits", ErrInvalidRequest)
		}
		return s.controls(ctx, req.Entity, req.Edits)
	case OpRemove:
		return nil, s.do(ctx, func(w *system.World) error {
			return w.Despawn(models.EntityID(req.Entity))
		})
	case OpSnapshot:
		var snap *scene.Scene
		err := s.do(ctx, func(w *system.World) error {
			snap = scene.Capture(w)
			return nil
		})
		return snap, err
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOp, req.Op)
	}
}

func (s *Server) spawn(ctx context.Context, req Request) (any, error) {
	if req.Config == nil {
		return nil, fmt.Errorf("%w: spawn needs a config", ErrInvalidRequest)
	}
	var out SpawnResult
	err := s.do(ctx, func(w *system.World) error {
		e, err := w.Spawn(system.SpawnSpec{
			Name:      req.Name,
			Position:  req.Position,
			Radius:    req.Radius,
			Component: req.Config,
		})
		if err != nil {
			return err
		}
		out.Entity = uint64(e.ID())
		return nil
	})
	return out, err
}

// controls draws the entity's GUI controls into a recorder, applying edits
// when given. Edits that leave the component in a state its type rejects are
// rolled back.
func (s *Server) controls(ctx context.Context, id uint64, edits map[string]any) (any, error) {
	var out InspectResult
	err := s.do(ctx, func(w *system.World) error {
		c, ok := w.Component(models.EntityID(id))
		if !ok {
			if _, exists := w.Entity(models.EntityID(id)); exists {
				return fmt.Errorf("%w: %d", ErrNoComponent, id)
			}
			return fmt.Errorf("%w: %d", system.ErrEntityNotFound, id)
		}
		if edits == nil {
			rec := gui.NewRecorder()
			c.GUIControls(rec)
			out = InspectResult{Entity: id, Type: c.TypeName(), Controls: rec.Controls()}
			return nil
		}

		before := c.ToJSON()
		rec := gui.NewEditor(edits)
		c.GUIControls(rec)
		if err := w.Library().Check(c.ToJSON().WithType(c.TypeName())); err != nil {
			if !c.FromJSON(before) {
				return fmt.Errorf("%w: %s could not be restored", custom.ErrMalformedConfig, c.TypeName())
			}
			return fmt.Errorf("edit rejected: %w", err)
		}
		out = InspectResult{Entity: id, Type: c.TypeName(), Controls: rec.Controls(), Applied: rec.Applied()}
		return nil
	})
	return out, err
}

func (s *Server) do(ctx context.Context, fn func(*system.World) error) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.world.Do(ctx, fn)
}
