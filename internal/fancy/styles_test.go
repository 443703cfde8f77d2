package fancy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/atlanticdynamic/hellocontainer/internal/fancy"
)

// StylesTestSuite is a test suite for testing styles-related functionality
type StylesTestSuite struct {
	suite.Suite
}

func (s *StylesTestSuite) TestStylesRenderContent() {
	sampleText := "Test Text"

	// terminal detection may strip colors, but the text always survives
	for _, rendered := range []string{
		fancy.RootStyle.Render(sampleText),
		fancy.HeaderStyle.Render(sampleText),
		fancy.InfoStyle.Render(sampleText),
		fancy.BranchStyle.Render(sampleText),
		fancy.ListenerText(sampleText),
		fancy.RouteText(sampleText),
		fancy.ValidText(sampleText),
		fancy.ErrorText(sampleText),
	} {
		s.Contains(rendered, sampleText)
	}
}

func TestStylesTestSuite(t *testing.T) {
	suite.Run(t, new(StylesTestSuite))
}

func TestTree(t *testing.T) {
	tree := fancy.Tree()
	assert.NotNil(t, tree)

	tree.Root("Root Node")
	tree.Child(fancy.Branch("Section", "Leaf A", "Leaf B"))

	out := tree.String()
	assert.Contains(t, out, "Root Node")
	assert.Contains(t, out, "Section")
	assert.Contains(t, out, "Leaf A")
	assert.Contains(t, out, "Leaf B")
}

func TestBranch_Empty(t *testing.T) {
	b := fancy.Branch("Only Title")
	assert.Contains(t, b.String(), "Only Title")
}
