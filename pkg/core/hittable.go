package core

// HitRecord contains information about a ray-object intersection.
// The zero value does not denote a hit; check the bool returned by Hit.
type HitRecord struct {
	Point     Point   // Point of intersection
	Normal    Vec3    // Unit surface normal, always facing against the ray
	T         float64 // Parameter t along the ray
	FrontFace bool    // Whether ray hit the outward-facing side
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
