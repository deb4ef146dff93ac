package remote

const serviceName = "Display"

type EmptyResponse struct {
}

type SetRotateRequest struct {
	Landscape bool
	Invert    bool
}

// DrawBitmapRequest carries straight-alpha RGBA rows, 4*Width bytes each.
type DrawBitmapRequest struct {
	PosX   uint16
	PosY   uint16
	Width  int
	Height int
	Pix    []byte
}
