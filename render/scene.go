package render

import (
	"errors"
	"fmt"
	"io"
)

// Scene is an ordered list of objects. A Scene is itself an Object.
type Scene struct {
	objects []Object
}

// NewScene returns an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// Append adds o to the end of the scene. The scene takes ownership: Close
// closes o if it implements io.Closer.
func (s *Scene) Append(o Object) {
	s.objects = append(s.objects, o)
}

// Len returns the number of objects.
func (s *Scene) Len() int { return len(s.objects) }

// Render renders the objects in append order and stops at the first
// error.
func (s *Scene) Render(frame Frame) error {
	for i, o := range s.objects {
		if err := o.Render(frame); err != nil {
			return fmt.Errorf("object %d: %w", i, err)
		}
	}
	return nil
}

// Close closes every object, even after a failure, and returns all
// errors joined.
func (s *Scene) Close() error {
	var errs []error
	for _, o := range s.objects {
		if c, ok := o.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	s.objects = nil
	return errors.Join(errs...)
}

// Display draws frames with one shared program.
type Display struct {
	device  Device
	program *Program
}

// NewDisplay checks program and binds it to device.
func NewDisplay(device Device, program *Program) (*Display, error) {
	if err := program.validate(); err != nil {
		return nil, err
	}
	return &Display{device: device, program: program}, nil
}

// Device returns the device the display draws on.
func (d *Display) Device() Device { return d.device }

// Update begins a frame, passes it to fn and finishes it. The frame is
// finished even when fn fails; fn's error takes precedence.
func (d *Display) Update(fn func(Frame) error) error {
	frame, err := d.device.BeginFrame(d.program)
	if err != nil {
		return fmt.Errorf("%w: begin frame: %w", ErrResource, err)
	}
	err = fn(frame)
	if ferr := frame.Finish(); ferr != nil && err == nil {
		err = fmt.Errorf("%w: finish frame: %w", ErrResource, ferr)
	}
	return err
}

// Draw renders o in a single frame.
func (d *Display) Draw(o Object) error {
	return d.Update(o.Render)
}
