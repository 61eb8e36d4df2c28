package cpq

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestCpq(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Cpq Suite")
}
