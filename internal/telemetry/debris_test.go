package telemetry_test

import (
	"fmt"
	"math"
	"math/rand/v2"
	"orbital/internal/telemetry"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Generator", func() {
	var (
		generator *telemetry.Generator
		now       time.Time
	)

	BeforeEach(func() {
		now = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
		telemetry.TimeNow = func() time.Time { return now }
		DeferCleanup(func() { telemetry.TimeNow = time.Now })

		generator = telemetry.NewGenerator(rand.New(rand.NewPCG(7, 11)))
	})

	Describe("DebrisField", func() {
		var (
			query telemetry.DebrisQuery
			field telemetry.DebrisField
		)

		BeforeEach(func() {
			query = telemetry.DebrisQuery{Limit: 50}
		})

		JustBeforeEach(func() {
			field = generator.DebrisField(query)
		})

		It("should generate the requested number of plausible objects", func() {
			Expect(field.Objects).To(HaveLen(50))
			Expect(field.TotalCount).To(Equal(telemetry.TrackedDebrisCount))
			Expect(field.LastUpdated).To(Equal(now))

			for i, obj := range field.Objects {
				Expect(obj.Size).To(BeNumerically(">", 0))
				Expect(obj.Mass).To(BeNumerically(">", 0))
				for _, c := range obj.Position {
					Expect(math.IsNaN(c) || math.IsInf(c, 0)).To(BeFalse())
				}
				Expect(obj.RCS).To(BeNumerically("~", math.Pi*obj.Size*obj.Size, 1e-9))
				Expect(obj.LaunchDate.Year()).To(BeNumerically(">=", 2000))
				Expect(obj.LaunchDate.Year()).To(BeNumerically("<", 2024))
				Expect(obj.LaunchDate.Day()).To(BeNumerically("<=", 28))
				Expect(obj.LastUpdate).To(Equal(now))
				Expect(obj.ID).To(Equal(fmt.Sprintf("DEBRIS-%06d", i+1)))
			}
		})

		It("should place objects inside the default altitude band", func() {
			for _, obj := range field.Objects {
				Expect(altitudeOf(obj)).To(BeNumerically(">=", telemetry.DefaultAltitudeMin-1e-6))
				Expect(altitudeOf(obj)).To(BeNumerically("<=", telemetry.DefaultAltitudeMax+1e-6))
			}
		})

		It("should name objects after their type", func() {
			for _, obj := range field.Objects {
				switch obj.Type {
				case telemetry.DebrisSatellite:
					Expect(obj.Name).To(HavePrefix("SAT-"))
				case telemetry.DebrisRocketBody:
					Expect(obj.Name).To(HavePrefix("RB-"))
				default:
					Expect(obj.Name).To(HavePrefix("FRAG-"))
				}
			}
		})

		When("an altitude band is requested", func() {
			BeforeEach(func() {
				query.AltitudeMin = 500
				query.AltitudeMax = 600
			})

			It("should honour it", func() {
				for _, obj := range field.Objects {
					Expect(altitudeOf(obj)).To(BeNumerically("~", 550, 50+1e-6))
				}
			})
		})

		When("the band is inverted", func() {
			BeforeEach(func() {
				query.AltitudeMin = 900
				query.AltitudeMax = 700
			})

			It("should swap the bounds", func() {
				for _, obj := range field.Objects {
					Expect(altitudeOf(obj)).To(BeNumerically("~", 800, 100+1e-6))
				}
			})
		})

		When("no limit is given", func() {
			BeforeEach(func() {
				query.Limit = 0
			})

			It("should fall back to the default", func() {
				Expect(field.Objects).To(HaveLen(telemetry.DefaultDebrisLimit))
			})
		})
	})

	Describe("Statistics", func() {
		It("should report the catalogue figures", func() {
			stats := generator.Statistics()
			Expect(stats.TotalObjects).To(Equal(34000))
			Expect(stats.ByAltitude.LEO + stats.ByAltitude.MEO + stats.ByAltitude.GEO).To(Equal(34000))
			Expect(stats.CollisionRisk).To(Equal("moderate"))
			Expect(stats.LastUpdate).To(Equal(now))
		})
	})
})

// altitudeOf recovers the altitude in km from a scene scaled position.
func altitudeOf(obj telemetry.DebrisObject) float64 {
	p := obj.Position
	return math.Sqrt(p[0]*p[0]+p[1]*p[1]+p[2]*p[2])*100 - telemetry.EarthRadiusKm
}
