// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import "math"

// angular dislocation in an infinite medium. The angular dislocation coordinate system (ADCS)
// has its apex at the origin, one leg along -z and the other leg in the y-z plane making the
// angle alpha with the first leg

// distToLegs returns r - z and r - zeta computed without cancellation, so that points close to
// the legs of the angular dislocation give finite values
func distToLegs(x, y, z, eta, zeta, r float64) (rmz, rmzeta float64) {
	rmz, rmzeta = r-z, r-zeta
	if z > 0 {
		rmz = (x*x + y*y) / (r + z)
	}
	if zeta > 0 {
		rmzeta = (x*x + eta*eta) / (r + zeta)
	}
	return
}

// angDisDisp returns the displacements of an angular dislocation with Burgers vector (bx,by,bz)
// at (x,y,z) in ADCS
func angDisDisp(x, y, z, alpha, bx, by, bz, nu float64) (u, v, w float64) {
	cosA := math.Cos(alpha)
	sinA := math.Sin(alpha)
	eta := y*cosA - z*sinA
	zeta := y*sinA + z*cosA
	r := math.Sqrt(x*x + y*y + z*z)

	rmz, rmzeta := distToLegs(x, y, z, eta, zeta, r)

	k := 1.0 / (8.0 * math.Pi * (1 - nu))
	n := 1 - 2*nu
	lz, lzeta := math.Log(rmz), math.Log(rmzeta)

	ux := bx * k * (x*y/r/rmz - x*eta/r/rmzeta)
	vx := bx * k * (eta*sinA/rmzeta - y*eta/r/rmzeta + y*y/r/rmz + n*(cosA*lzeta-lz))
	wx := bx * k * (eta*cosA/rmzeta - y/r - eta*z/r/rmzeta - n*sinA*lzeta)

	uy := by * k * (x*x*cosA/r/rmzeta - x*x/r/rmz - n*(cosA*lzeta-lz))
	vy := by * x * k * (y*cosA/r/rmzeta - sinA*cosA/rmzeta - y/r/rmz)
	wy := by * x * k * (z*cosA/r/rmzeta - cosA*cosA/rmzeta + 1/r)

	uz := bz * sinA * k * (n*lzeta - x*x/r/rmzeta)
	vz := bz * x * sinA * k * (sinA/rmzeta - y/r/rmzeta)
	wz := bz * x * sinA * k * (cosA/rmzeta - z/r/rmzeta)

	return ux + uy + uz, vx + vy + vz, wx + wy + wz
}

// angDisStrain returns the strains (xx,yy,zz,xy,xz,yz) of an angular dislocation with Burgers
// vector (bx,by,bz) at (x,y,z) in ADCS
func angDisStrain(x, y, z, alpha, bx, by, bz, nu float64) (Exx, Eyy, Ezz, Exy, Exz, Eyz float64) {
	sinA := math.Sin(alpha)
	cosA := math.Cos(alpha)
	eta := y*cosA - z*sinA
	zeta := y*sinA + z*cosA
	x2 := x * x
	y2 := y * y
	z2 := z * z
	r2 := x2 + y2 + z2
	r := math.Sqrt(r2)
	rrr := r * r2
	rmz, rmzeta := distToLegs(x, y, z, eta, zeta, r)
	rz := r * rmz
	r2zz := r2 * (rmz * rmz)
	rrrz := rrr * rmz
	W := -rmzeta
	WW := W * W
	Wr := W * r
	WWr := WW * r
	Wrrr := W * rrr
	WWrr := WW * r2
	C := (r*cosA - z) / Wr
	S := (r*sinA - y) / Wr

	// partial derivatives of the Burgers function
	dFidx := (eta/r/rmzeta - y/r/rmz) / (4 * math.Pi)
	dFidy := (x/r/rmz - cosA*x/r/rmzeta) / (4 * math.Pi)
	dFidz := sinA * x / r / rmzeta / (4 * math.Pi)

	k := 1.0 / (8.0 * math.Pi * (1 - nu))
	Exx = bx*dFidx + bx*k*(eta/Wr+eta*x2/WWrr-eta*x2/Wrrr+y/rz-x2*y/r2zz-x2*y/rrrz) - by*x*k*(((2*nu+1)/Wr+x2/WWrr-x2/Wrrr)*cosA+(2*nu+1)/rz-x2/r2zz-x2/rrrz) + bz*x*sinA*k*((2*nu+1)/Wr+x2/WWrr-x2/Wrrr)
	Eyy = by*dFidy + bx*k*((1/Wr+S*S-y2/Wrrr)*eta+(2*nu+1)*y/rz-y*y*y/r2zz-y*y*y/rrrz-2*nu*cosA*S) - by*x*k*(1/rz-y2/r2zz-y2/rrrz+(1/Wr+S*S-y2/Wrrr)*cosA) + bz*x*sinA*k*(1/Wr+S*S-y2/Wrrr)
	Ezz = bz*dFidz + bx*k*(eta/W/r+eta*C*C-eta*z2/Wrrr+y*z/rrr+2*nu*sinA*C) - by*x*k*((1/Wr+C*C-z2/Wrrr)*cosA+z/rrr) + bz*x*sinA*k*(1/Wr+C*C-z2/Wrrr)
	Exy = bx*dFidy/2 + by*dFidx/2 - bx*k*(x*y2/r2zz-nu*x/rz+x*y2/rrrz-nu*x*cosA/Wr+eta*x*S/Wr+eta*x*y/Wrrr) + by*k*(x2*y/r2zz-nu*y/rz+x2*y/rrrz+nu*cosA*S+x2*y*cosA/Wrrr+x2*cosA*S/Wr) - bz*sinA*k*(nu*S+x2*S/Wr+x2*y/Wrrr)
	Exz = bx*dFidz/2 + bz*dFidx/2 - bx*k*(-x*y/rrr+nu*x*sinA/Wr+eta*x*C/Wr+eta*x*z/Wrrr) + by*k*(-x2/rrr+nu/r+nu*cosA*C+x2*cosA*C/Wr+x2*z*cosA/Wrrr) - bz*sinA*k*(nu*C+x2*C/Wr+x2*z/Wrrr)
	Eyz = by*dFidz/2 + bz*dFidy/2 + bx*k*(y2/rrr-nu/r-nu*cosA*C+nu*sinA*S+eta*sinA*cosA/WW-eta*(y*cosA+z*sinA)/WWr+eta*y*z/WWrr-eta*y*z/Wrrr) - by*x*k*(y/rrr+sinA*(cosA*cosA)/WW-cosA*(y*cosA+z*sinA)/WWr+y*z*cosA/WWrr-y*z*cosA/Wrrr) - bz*x*sinA*k*(-sinA*cosA/WW+(y*cosA+z*sinA)/WWr-y*z/WWrr+y*z/Wrrr)
	return
}
