package gobf

// @generated from testdata

//go:generate go run scripts/gen_expects.go -- testdata expects_test.go

var progExpects = []progExpect{
	{file: "testdata/echo.bf", input: "abc", output: "abc"},
	{file: "testdata/hello.bf", input: "", output: "Hello World!\n"},
	{file: "testdata/sixtyfour.bf", input: "", output: "@"},
}
