package joystick_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/vstick/internal/joystick"
)

var _ = Describe("Engine", func() {
	var (
		box     joystick.Rect
		eng     *joystick.Engine
		changes []joystick.Coordinate
		o       joystick.Overrides
	)

	at := func(dx, dy float64) joystick.Point {
		c := box.Center()
		return joystick.Point{X: c.X + dx, Y: c.Y + dy}
	}

	BeforeEach(func() {
		box = joystick.Rect{X: 200, Y: 40, Width: 120, Height: 120}
		changes = nil
		o = joystick.Overrides{}
	})

	JustBeforeEach(func() {
		o.OnChange = func(c joystick.Coordinate) { changes = append(changes, c) }
		eng = joystick.New(joystick.Resolve(o))
	})

	Context("when idle", func() {
		It("ignores moves", func() {
			Expect(eng.PointerMove(at(20, 20), box)).To(BeFalse())
			Expect(changes).To(BeEmpty())
			Expect(eng.State()).To(Equal(joystick.Idle))
		})

		It("enters dragging on pointer down and claims the event", func() {
			Expect(eng.PointerDown()).To(BeTrue())
			Expect(eng.State()).To(Equal(joystick.Dragging))
			Expect(changes).To(BeEmpty())
		})
	})

	Context("when dragging", func() {
		JustBeforeEach(func() {
			eng.PointerDown()
		})

		It("stays dragging on a second pointer down", func() {
			Expect(eng.PointerDown()).To(BeTrue())
			Expect(eng.State()).To(Equal(joystick.Dragging))
		})

		It("clamps the handle to the travel circle", func() {
			eng.PointerMove(at(50, 0), box)
			Expect(eng.Offset().DX).To(BeNumerically("~", 42, 1e-9))
			Expect(eng.Coordinate()).To(Equal(joystick.Coordinate{X: 100}))
			Expect(changes).To(HaveLen(1))
		})

		It("keeps the handle inside the circle for far diagonal input", func() {
			eng.PointerMove(at(-900, 700), box)
			off := eng.Offset()
			Expect(math.Hypot(off.DX, off.DY)).To(BeNumerically("<=", 42+1e-9))
			Expect(eng.Coordinate().X).To(BeNumerically("<", 0))
			Expect(eng.Coordinate().Y).To(BeNumerically(">", 0))
		})

		It("recentres and notifies on release", func() {
			eng.PointerMove(at(12, -30), box)
			eng.PointerUp()
			Expect(eng.State()).To(Equal(joystick.Idle))
			Expect(eng.Offset()).To(Equal(joystick.Offset{}))
			Expect(changes).To(HaveLen(2))
			Expect(changes[1]).To(Equal(joystick.Coordinate{}))
		})

		Context("with a step of 10", func() {
			BeforeEach(func() {
				o.Step = joystick.Float(10)
			})

			It("quantises the coordinate", func() {
				eng.PointerMove(at(23.4*42/100, 0), box)
				Expect(eng.Coordinate().X).To(Equal(20.0))
			})
		})

		Context("with the x axis locked", func() {
			BeforeEach(func() {
				o.StickOnXAxis = joystick.Bool(true)
			})

			It("always reports x as zero", func() {
				for _, dx := range []float64{-300, -10, 0, 7, 300} {
					eng.PointerMove(at(dx, 15), box)
					Expect(eng.Coordinate().X).To(BeZero())
				}
				Expect(changes).To(HaveLen(5))
			})
		})

		Context("without return to centre", func() {
			BeforeEach(func() {
				o.ReturnToCenter = joystick.Bool(false)
			})

			It("keeps the last position and does not notify on release", func() {
				eng.PointerMove(at(0, 50), box)
				eng.PointerUp()
				Expect(eng.Coordinate()).To(Equal(joystick.Coordinate{Y: 100}))
				Expect(changes).To(HaveLen(1))
			})
		})
	})

	Context("with a handle larger than the bound", func() {
		BeforeEach(func() {
			o.BoundSize = joystick.Float(20)
			o.HandleSize = joystick.Float(30)
		})

		It("degrades to zero displacement", func() {
			eng.PointerDown()
			eng.PointerMove(at(40, 40), box)
			Expect(eng.Offset()).To(Equal(joystick.Offset{}))
			Expect(eng.Coordinate()).To(Equal(joystick.Coordinate{}))
		})
	})
})
