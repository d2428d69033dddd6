package remote

type EmptyResponse struct {
}

type DrawRequest struct {
	X     int
	Y     int
	Image []byte
}
