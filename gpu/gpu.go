package gpu

import "github.com/rs/zerolog"

// GPU is the virtual GPU: it owns every buffer, vertex puller,
// program and the framebuffer it creates, and exposes the resource
// and draw commands of the rendering pipeline. A GPU value is not
// safe for concurrent use by multiple goroutines; callers synchronize
// externally if they share one across goroutines.
type GPU struct {
	buffers  slotTable[bufferObj]
	pullers  slotTable[pullerObj]
	programs slotTable[programObj]

	activePuller  ID
	activeProgram ID

	fb *Framebuffer

	log zerolog.Logger
}

// New creates a virtual GPU with no buffers, pullers, programs or
// framebuffer. Use CreateFramebuffer before the first draw call.
func New() *GPU {
	return &GPU{log: zerolog.Nop()}
}

// SetLogger installs a zerolog.Logger used for diagnostic messages
// (currently: one Debug-level line per rejected draw call). The
// default is a disabled logger, so embedding virtgpu has no logging
// side effects unless the caller opts in.
func (g *GPU) SetLogger(l zerolog.Logger) { g.log = l }
