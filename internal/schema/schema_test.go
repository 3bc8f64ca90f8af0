package schema_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/orbitsim/internal/schema"
)

var _ = Describe("Navmode", func() {
	It("covers every declared name", func() {
		Expect(schema.NavmodeNames).To(HaveLen(7))
		Expect(schema.Manual.String()).To(Equal("Manual"))
		Expect(schema.ApproachTarget.String()).To(Equal("Approach Target"))
		Expect(schema.AntiTargVelocity.String()).To(Equal("Anti Targ Velocity"))
	})

	It("formats out-of-range values numerically", func() {
		Expect(schema.Navmode(99).String()).To(Equal("Navmode(99)"))
	})

	It("round-trips through YAML by name", func() {
		for i := range schema.NavmodeNames {
			mode := schema.Navmode(i)
			data, err := yaml.Marshal(mode)
			Expect(err).NotTo(HaveOccurred())

			var back schema.Navmode
			Expect(yaml.Unmarshal(data, &back)).To(Succeed())
			Expect(back).To(Equal(mode))
		}
	})

	It("rejects unknown names", func() {
		var mode schema.Navmode
		err := yaml.Unmarshal([]byte(`"Warp Drive"`), &mode)
		Expect(err).To(MatchError(ContainSubstring("unknown navmode")))
	})

	It("refuses to marshal out-of-range values", func() {
		_, err := yaml.Marshal(schema.Navmode(-1))
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("DeepCopy", func() {
	It("shares no slices with the original", func() {
		orig := &schema.PhysicalState{
			Entities: []schema.Entity{{Name: "Earth"}},
			Engineering: schema.EngineeringState{
				Components:   []schema.Component{{Temperature: 20}},
				CoolantLoops: []schema.CoolantLoop{{CoolantTemp: 15}},
				Radiators:    []schema.Radiator{{Functioning: true}},
			},
		}

		cp := orig.DeepCopy()
		cp.Entities[0].Name = "Mars"
		cp.Engineering.Components[0].Temperature = 500
		cp.Engineering.CoolantLoops[0].CoolantTemp = 99
		cp.Engineering.Radiators[0].Functioning = false

		Expect(orig.Entities[0].Name).To(Equal("Earth"))
		Expect(orig.Engineering.Components[0].Temperature).To(Equal(20.0))
		Expect(orig.Engineering.CoolantLoops[0].CoolantTemp).To(Equal(15.0))
		Expect(orig.Engineering.Radiators[0].Functioning).To(BeTrue())
	})
})

var _ = Describe("Snapshot files", func() {
	It("round-trips a full snapshot through Load and Save", func() {
		state := &schema.PhysicalState{
			Timestamp: 100,
			SrbTime:   30,
			TimeAcc:   5,
			Reference: "Earth",
			Target:    "AYSE",
			Navmode:   schema.DepartReference,
			Entities: []schema.Entity{
				{Name: "Earth", Mass: 5.97e24, Radius: 6.371e6, X: 1, VY: 2},
				{Name: "Habitat", Artificial: true, Fuel: 1e5, LandedOn: "Earth"},
			},
			Engineering: schema.EngineeringState{
				Components:   []schema.Component{{Connected: true, AttachedToCoolantLoop: 1}},
				CoolantLoops: []schema.CoolantLoop{{CoolantTemp: 15, PrimaryPumpOn: true}},
				Radiators:    []schema.Radiator{{AttachedToCoolantLoop: 1, Functioning: true}},
				MasterAlarm:  true,
			},
		}

		path := filepath.Join(GinkgoT().TempDir(), "snap.yaml")
		Expect(schema.Save(path, state)).To(Succeed())

		loaded, err := schema.Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded).To(Equal(state))
	})

	It("reports missing files", func() {
		_, err := schema.Load(filepath.Join(GinkgoT().TempDir(), "absent.yaml"))
		Expect(os.IsNotExist(err)).To(BeTrue())
	})

	It("reports malformed YAML with the file path", func() {
		path := filepath.Join(GinkgoT().TempDir(), "bad.yaml")
		Expect(os.WriteFile(path, []byte("entities: {not: [a, list"), 0644)).To(Succeed())

		_, err := schema.Load(path)
		Expect(err).To(MatchError(ContainSubstring(path)))
	})
})
