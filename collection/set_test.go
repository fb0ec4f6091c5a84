package collection

import (
	"cmp"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"k8s.io/apimachinery/pkg/util/sets"
)

var _ = Describe("HashSet", func() {
	var s HashSet[string]

	BeforeEach(func() {
		s = NewHashSet[string](2)
	})

	It("should absorb duplicates", func() {
		s.Insert("A")
		s.Insert("B", "B")
		s.Insert()

		Expect(s.Len()).To(Equal(2))
		Expect(s.Has("A")).To(BeTrue())
		Expect(s.Has("C")).To(BeFalse())
		Expect(slices.Collect(s.All())).To(ConsistOf("A", "B"))
	})

	It("should sort on request", func() {
		s.Insert("c", "a", "b")
		Expect(s.Sorted(cmp.Compare[string])).To(Equal([]string{"a", "b", "c"}))
	})

	It("should stop iterating when asked", func() {
		s.Insert("a", "b", "c")

		n := 0
		for range s.All() {
			n++
			break
		}
		Expect(n).To(Equal(1))
	})

	It("should share the caller's set", func() {
		src := sets.New("x")
		h := HashSetOf(src)
		h.Insert("y")

		Expect(src.Has("y")).To(BeTrue())
		Expect(h.Items().Len()).To(Equal(2))
	})

	It("should replace a nil set", func() {
		h := HashSetOf[int](nil)
		h.Insert(1)
		Expect(h.Len()).To(Equal(1))
		Expect(IsNil(HashSet[int](nil))).To(BeTrue())
	})
})
