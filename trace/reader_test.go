package trace

import (
	"io"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Reader", func() {
	It("should read records separated by arbitrary whitespace", func() {
		r := NewReader(strings.NewReader("R 0x1000\n\tW 2fff\n"))

		rec, err := r.Next()
		Expect(err).ToNot(HaveOccurred())
		Expect(rec).To(Equal(Record{Op: OpRead, Addr: 0x1000}))

		rec, err = r.Next()
		Expect(err).ToNot(HaveOccurred())
		Expect(rec).To(Equal(Record{Op: OpWrite, Addr: 0x2fff}))

		_, err = r.Next()
		Expect(err).To(Equal(io.EOF))
	})

	It("should accept addresses with and without the 0x prefix", func() {
		r := NewReader(strings.NewReader("R 0X00ff R ff"))

		rec, err := r.Next()
		Expect(err).ToNot(HaveOccurred())
		Expect(rec.Addr).To(Equal(uint32(0xff)))

		rec, err = r.Next()
		Expect(err).ToNot(HaveOccurred())
		Expect(rec.Addr).To(Equal(uint32(0xff)))
	})

	It("should pass unknown operation markers through", func() {
		r := NewReader(strings.NewReader("X 0x1000"))

		rec, err := r.Next()
		Expect(err).ToNot(HaveOccurred())
		Expect(rec.Op).To(Equal(byte('X')))
	})

	It("should reject multi-character operation markers", func() {
		r := NewReader(strings.NewReader("READ 0x1000"))

		_, err := r.Next()
		Expect(err).To(HaveOccurred())
	})

	It("should reject a record without an address", func() {
		r := NewReader(strings.NewReader("R"))

		_, err := r.Next()
		Expect(err).To(HaveOccurred())
		Expect(err).ToNot(Equal(io.EOF))
	})

	It("should reject an unparsable address", func() {
		r := NewReader(strings.NewReader("R zzzz"))

		_, err := r.Next()
		Expect(err).To(HaveOccurred())
	})

	It("should return io.EOF on an empty trace", func() {
		r := NewReader(strings.NewReader(""))

		_, err := r.Next()
		Expect(err).To(Equal(io.EOF))
	})
})
