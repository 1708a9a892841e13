package bom

import "testing"

func TestTree_Skateboard(t *testing.T) {
	root := buildSkateboard(t)

	want := "SKA-100\n" +
		"├── SK1001-01\n" +
		"├── TR-01\n" +
		"│   ├── SK1002-01\n" +
		"│   └── WH-01\n" +
		"│       ├── SK1004-01\n" +
		"│       └── SK1003-01\n" +
		"├── SK1005-01\n" +
		"├── SK1006-01\n" +
		"└── SK1007-01\n"

	got := root.Tree()
	if got != want {
		t.Errorf("Tree rendering mismatch.\nExpected:\n%s\nGot:\n%s", want, got)
	}
}

func TestTree_SubtreeRendersFromItsOwnRoot(t *testing.T) {
	root := buildSkateboard(t)

	truck := root.Assemblies()[0]
	want := "TR-01\n" +
		"├── SK1002-01\n" +
		"└── WH-01\n" +
		"    ├── SK1004-01\n" +
		"    └── SK1003-01\n"

	got := truck.Tree()
	if got != want {
		t.Errorf("Subtree rendering mismatch.\nExpected:\n%s\nGot:\n%s", want, got)
	}
}
