package naming

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Name", func() {
	It("should parse name", func() {
		name := ParseName("Firmware[0].TxQueue[0]")
		Expect(name.Tokens[0].ElemName).To(Equal("Firmware"))
		Expect(name.Tokens[0].Index).To(Equal([]int{0}))
		Expect(name.Tokens[1].ElemName).To(Equal("TxQueue"))
		Expect(name.Tokens[1].Index).To(Equal([]int{0}))
	})

	It("should parse multi-dimensional index", func() {
		name := ParseName("Bank[0][1].Line[2][3]")
		Expect(name.Tokens[0].ElemName).To(Equal("Bank"))
		Expect(name.Tokens[0].Index).To(Equal([]int{0, 1}))
		Expect(name.Tokens[1].ElemName).To(Equal("Line"))
		Expect(name.Tokens[1].Index).To(Equal([]int{2, 3}))
	})

	It("should panic if the name is empty", func() {
		Expect(func() { MustBeValid("") }).To(Panic())
	})

	It("should panic if name includes underscore", func() {
		Expect(func() { MustBeValid("Queue_0") }).To(Panic())
	})

	It("should panic if name includes dash", func() {
		Expect(func() { MustBeValid("Queue-0") }).To(Panic())
	})

	It("should panic if name is not capitalized CamelCase", func() {
		Expect(func() { MustBeValid("queue0") }).To(Panic())
	})

	It("should have paired square brackets", func() {
		Expect(func() { MustBeValid("Queue[0") }).To(Panic())
		Expect(func() { MustBeValid("Queue0]") }).To(Panic())
	})

	It("should panic if element name is empty", func() {
		Expect(func() { MustBeValid("Queue..0") }).To(Panic())
	})

	It("should build name", func() {
		Expect(BuildName("", "Queue")).To(Equal("Queue"))
		Expect(BuildName("Firmware", "Queue")).To(Equal("Firmware.Queue"))
	})

	It("should build name with index", func() {
		Expect(BuildNameWithIndex("", "Queue", 0)).To(Equal("Queue[0]"))
		Expect(BuildNameWithIndex("Firmware", "Queue", 1)).
			To(Equal("Firmware.Queue[1]"))
	})
})
