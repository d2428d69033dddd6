package mixer

type Option func(d *Drawer)

// WithEffect sets the pool of effects the drawer samples from. Without it
// every frame is a single full draw.
func WithEffect(e ...Effect) Option {
	return func(d *Drawer) {
		d.effs = e
	}
}
