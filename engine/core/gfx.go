package core

// GPU resource handles. Backends return their own concrete types and
// type-assert them back on use.
type (
	Pipeline any
	Texture  any
	Mesh     any
)

type PipelineDesc struct {
	VertexSource   string
	FragmentSource string
	DepthTest      bool
	Blend          bool
}

type TextureFormat int

const (
	TextureRGBA8 TextureFormat = iota
)

type TextureDesc struct {
	Width, Height int
	Format        TextureFormat
	Pixels        []byte
	MinFilter     string // "nearest" | "linear"
	MagFilter     string
	WrapU, WrapV  string // "clamp" | "repeat"
}

type AttribType int

const (
	AttribFloat32 AttribType = iota
)

type VertexAttrib struct {
	Location int
	Size     int
	Type     AttribType
	Offset   int
}

type VertexLayout struct {
	Stride     int
	Attributes []VertexAttrib
}

type MeshDesc struct {
	Vertices []float32
	Indices  []uint32
	Layout   VertexLayout
}

// ScissorRect is in framebuffer pixels with a top-left origin.
type ScissorRect struct {
	X, Y, W, H int
	Enabled    bool
}

type DrawCmd struct {
	Pipe       Pipeline
	Mesh       Mesh
	IndexCount int // 0 draws the whole mesh
	Uniforms   map[string]any
	Samplers   map[string]Texture
	Scissor    ScissorRect
}
