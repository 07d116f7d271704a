// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// angDisDispFSC returns the harmonic (free surface correction) displacements of an angular
// dislocation with Burgers vector (b1,b2,b3) in an elastic half-space. (y1,y2,y3) are
// coordinates in the angular dislocation system with y3 pointing downwards, beta is the angle
// of the dislocation leg and a is the depth of the apex
func angDisDispFSC(y1, y2, y3, beta, b1, b2, b3, nu, a float64) (v1, v2, v3 float64) {
	sinB := math.Sin(beta)
	cosB := math.Cos(beta)
	cotB := cosB / sinB
	y3b := y3 + 2*a
	z1b := y1*cosB + y3b*sinB
	z3b := -y1*sinB + y3b*cosB
	rb := math.Sqrt(y1*y1 + y2*y2 + y3b*y3b)

	// Burgers function
	Fib := 2 * math.Atan(-y2/(-(rb+y3b)/math.Tan(beta/2)+y1))

	k := 1.0 / (4.0 * math.Pi * (1 - nu))

	v1cb1 := k * (-2*(1-nu)*(1-2*nu)*Fib*(cotB*cotB) + (1-2*nu)*y2/(rb+y3b)*((1-2*nu-a/rb)*cotB-y1/(rb+y3b)*(nu+a/rb)) + (1-2*nu)*y2*cosB*cotB/(rb+z3b)*(cosB+a/rb) + a*y2*(y3b-a)*cotB/(rb*rb*rb) + y2*(y3b-a)/(rb*(rb+y3b))*(-(1-2*nu)*cotB+y1/(rb+y3b)*(2*nu+a/rb)+a*y1/(rb*rb)) + y2*(y3b-a)/(rb*(rb+z3b))*(cosB/(rb+z3b)*((rb*cosB+y3b)*((1-2*nu)*cosB-a/rb)*cotB+2*(1-nu)*(rb*sinB-y1)*cosB)-a*y3b*cosB*cotB/(rb*rb)))
	v2cb1 := k * ((1-2*nu)*((2*(1-nu)*(cotB*cotB)-nu)*math.Log(rb+y3b)-(2*(1-nu)*(cotB*cotB)+1-2*nu)*cosB*math.Log(rb+z3b)) - (1-2*nu)/(rb+y3b)*(y1*cotB*(1-2*nu-a/rb)+nu*y3b-a+y2*y2/(rb+y3b)*(nu+a/rb)) - (1-2*nu)*z1b*cotB/(rb+z3b)*(cosB+a/rb) - a*y1*(y3b-a)*cotB/(rb*rb*rb) + (y3b-a)/(rb+y3b)*(-2*nu+1/rb*((1-2*nu)*y1*cotB-a)+y2*y2/(rb*(rb+y3b))*(2*nu+a/rb)+a*(y2*y2)/(rb*rb*rb)) + (y3b-a)/(rb+z3b)*(cosB*cosB-1/rb*((1-2*nu)*z1b*cotB+a*cosB)+a*y3b*z1b*cotB/(rb*rb*rb)-1/(rb*(rb+z3b))*(y2*y2*(cosB*cosB)-a*z1b*cotB/rb*(rb*cosB+y3b))))
	v3cb1 := k * (2*(1-nu)*((1-2*nu)*Fib*cotB+y2/(rb+y3b)*(2*nu+a/rb)-y2*cosB/(rb+z3b)*(cosB+a/rb)) + y2*(y3b-a)/rb*(2*nu/(rb+y3b)+a/(rb*rb)) + y2*(y3b-a)*cosB/(rb*(rb+z3b))*(1-2*nu-(rb*cosB+y3b)/(rb+z3b)*(cosB+a/rb)-a*y3b/(rb*rb)))
	v1cb2 := k * ((1-2*nu)*((2*(1-nu)*(cotB*cotB)+nu)*math.Log(rb+y3b)-(2*(1-nu)*(cotB*cotB)+1)*cosB*math.Log(rb+z3b)) + (1-2*nu)/(rb+y3b)*(-(1-2*nu)*y1*cotB+nu*y3b-a+a*y1*cotB/rb+y1*y1/(rb+y3b)*(nu+a/rb)) - (1-2*nu)*cotB/(rb+z3b)*(z1b*cosB-a*(rb*sinB-y1)/(rb*cosB)) - a*y1*(y3b-a)*cotB/(rb*rb*rb) + (y3b-a)/(rb+y3b)*(2*nu+1/rb*((1-2*nu)*y1*cotB+a)-y1*y1/(rb*(rb+y3b))*(2*nu+a/rb)-a*(y1*y1)/(rb*rb*rb)) + (y3b-a)*cotB/(rb+z3b)*(-cosB*sinB+a*y1*y3b/(rb*rb*rb*cosB)+(rb*sinB-y1)/rb*(2*(1-nu)*cosB-(rb*cosB+y3b)/(rb+z3b)*(1+a/(rb*cosB)))))
	v2cb2 := k * (2*(1-nu)*(1-2*nu)*Fib*(cotB*cotB) + (1-2*nu)*y2/(rb+y3b)*(-(1-2*nu-a/rb)*cotB+y1/(rb+y3b)*(nu+a/rb)) - (1-2*nu)*y2*cotB/(rb+z3b)*(1+a/(rb*cosB)) - a*y2*(y3b-a)*cotB/(rb*rb*rb) + y2*(y3b-a)/(rb*(rb+y3b))*((1-2*nu)*cotB-2*nu*y1/(rb+y3b)-a*y1/rb*(1/rb+1/(rb+y3b))) + y2*(y3b-a)*cotB/(rb*(rb+z3b))*(-2*(1-nu)*cosB+(rb*cosB+y3b)/(rb+z3b)*(1+a/(rb*cosB))+a*y3b/(rb*rb*cosB)))
	v3cb2 := k * (-2*(1-nu)*(1-2*nu)*cotB*(math.Log(rb+y3b)-cosB*math.Log(rb+z3b)) - 2*(1-nu)*y1/(rb+y3b)*(2*nu+a/rb) + 2*(1-nu)*z1b/(rb+z3b)*(cosB+a/rb) + (y3b-a)/rb*((1-2*nu)*cotB-2*nu*y1/(rb+y3b)-a*y1/(rb*rb)) - (y3b-a)/(rb+z3b)*(cosB*sinB+(rb*cosB+y3b)*cotB/rb*(2*(1-nu)*cosB-(rb*cosB+y3b)/(rb+z3b))+a/rb*(sinB-y3b*z1b/(rb*rb)-z1b*(rb*cosB+y3b)/(rb*(rb+z3b)))))
	v1cb3 := k * ((1-2*nu)*(y2/(rb+y3b)*(1+a/rb)-y2*cosB/(rb+z3b)*(cosB+a/rb)) - y2*(y3b-a)/rb*(a/(rb*rb)+1/(rb+y3b)) + y2*(y3b-a)*cosB/(rb*(rb+z3b))*((rb*cosB+y3b)/(rb+z3b)*(cosB+a/rb)+a*y3b/(rb*rb)))
	v2cb3 := k * ((1-2*nu)*(-sinB*math.Log(rb+z3b)-y1/(rb+y3b)*(1+a/rb)+z1b/(rb+z3b)*(cosB+a/rb)) + y1*(y3b-a)/rb*(a/(rb*rb)+1/(rb+y3b)) - (y3b-a)/(rb+z3b)*(sinB*(cosB-a/rb)+z1b/rb*(1+a*y3b/(rb*rb))-1/(rb*(rb+z3b))*(y2*y2*cosB*sinB-a*z1b/rb*(rb*cosB+y3b))))
	v3cb3 := k * (2*(1-nu)*Fib + 2*(1-nu)*(y2*sinB/(rb+z3b)*(cosB+a/rb)) + y2*(y3b-a)*sinB/(rb*(rb+z3b))*(1+(rb*cosB+y3b)/(rb+z3b)*(cosB+a/rb)+a*y3b/(rb*rb)))

	v1 = b1*v1cb1 + b2*v1cb2 + b3*v1cb3
	v2 = b1*v2cb1 + b2*v2cb2 + b3*v2cb3
	v3 = b1*v3cb1 + b2*v3cb2 + b3*v3cb3
	return
}

// angSetupFSC returns the harmonic displacements, in the global system, of the pair of angular
// dislocations along the side PA-PB of a triangular dislocation with global Burgers vector bX
func angSetupFSC(X, bX, PA, PB r3.Vec, nu float64) r3.Vec {

	// side vector and angle with the vertical
	side := r3.Sub(PB, PA)
	beta := math.Acos(-side.Z / r3.Norm(side))
	const eps = 2.220446049250313e-16
	if math.Abs(beta) < eps || math.Abs(math.Pi-beta) < eps {
		return r3.Vec{}
	}

	// angular dislocation coordinate system: y3 downwards
	ey1 := r3.Unit(r3.Vec{X: side.X, Y: side.Y})
	ey3 := r3.Vec{Z: -1}
	ey2 := r3.Cross(ey3, ey1)
	toADCS := func(v r3.Vec) r3.Vec {
		return r3.Vec{X: r3.Dot(ey1, v), Y: r3.Dot(ey2, v), Z: r3.Dot(ey3, v)}
	}
	yA := toADCS(r3.Sub(X, PA))
	yB := r3.Sub(yA, toADCS(side))
	b := toADCS(bX)

	// configuration avoiding the numerical singularities of the legs
	if beta*yA.X >= 0 {
		beta = -math.Pi + beta
	}
	var vA, vB r3.Vec
	vA.X, vA.Y, vA.Z = angDisDispFSC(yA.X, yA.Y, yA.Z, beta, b.X, b.Y, b.Z, nu, -PA.Z)
	vB.X, vB.Y, vB.Z = angDisDispFSC(yB.X, yB.Y, yB.Z, beta, b.X, b.Y, b.Z, nu, -PB.Z)
	v := r3.Sub(vB, vA)

	// back to the global system
	return r3.Add(r3.Scale(v.X, ey1), r3.Add(r3.Scale(v.Y, ey2), r3.Scale(v.Z, ey3)))
}
