package physics

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/san-kum/orbitsim/internal/names"
	"github.com/san-kum/orbitsim/internal/schema"
)

func TestRecordAccessors(t *testing.T) {
	g := NewWithT(t)

	rec := NewRecord(&schema.Entity{
		Name: names.AYSE, Mass: 2e6, Radius: 100, Artificial: true,
	})

	rec.SetPos(3, 4)
	rec.SetVel(-1, 2)
	x, y := rec.Pos()
	g.Expect(x).To(Equal(3.0))
	g.Expect(y).To(Equal(4.0))
	vx, vy := rec.Vel()
	g.Expect(vx).To(Equal(-1.0))
	g.Expect(vy).To(Equal(2.0))

	rec.SetFuel(500)
	rec.SetThrottle(1)
	rec.SetBroken(true)
	g.Expect(rec.Fuel()).To(Equal(500.0))
	g.Expect(rec.Throttle()).To(Equal(1.0))
	g.Expect(rec.Broken()).To(BeTrue())

	g.Expect(rec.Dockable()).To(BeTrue())
	g.Expect(rec.Landed()).To(BeFalse())

	// Record SetLandedOn has no name table to validate against.
	g.Expect(rec.SetLandedOn("anything")).To(Succeed())
	g.Expect(rec.LandedOn()).To(Equal("anything"))
	g.Expect(rec.Landed()).To(BeTrue())
}

func TestRecordAliasesBacking(t *testing.T) {
	g := NewWithT(t)

	e := schema.Entity{Name: names.Habitat}
	rec := NewRecord(&e)
	rec.SetX(42)
	g.Expect(e.X).To(Equal(42.0))
}

func TestViewPairedAccessors(t *testing.T) {
	g := NewWithT(t)

	s := mustState(t)
	v, err := s.EntityByName(names.Habitat)
	g.Expect(err).NotTo(HaveOccurred())

	v.SetPos(100, 200)
	v.SetVel(10, 20)

	x, y := v.Pos()
	g.Expect(x).To(Equal(100.0))
	g.Expect(y).To(Equal(200.0))
	g.Expect(s.X()[1]).To(Equal(100.0))
	g.Expect(s.Y()[1]).To(Equal(200.0))
	g.Expect(s.VX()[1]).To(Equal(10.0))
	g.Expect(s.VY()[1]).To(Equal(20.0))
}

func TestViewUnchangingFields(t *testing.T) {
	g := NewWithT(t)

	s := mustState(t)
	v, err := s.EntityByName("Earth")
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(v.Name()).To(Equal("Earth"))
	g.Expect(v.Mass()).To(Equal(5.97e24))
	g.Expect(v.Radius()).To(Equal(6.371e6))
	g.Expect(v.Artificial()).To(BeFalse())
	g.Expect(v.AtmosphereThickness()).To(Equal(1e5))
	g.Expect(v.AtmosphereScaling()).To(Equal(0.5))
}
