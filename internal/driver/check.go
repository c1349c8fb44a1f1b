package driver

import (
	"io"
	"os"

	"quill/internal/checker"
	"quill/internal/diag"
	"quill/internal/observ"
	"quill/internal/source"
)

// CheckFile loads one document into fileSet and checks it. A read failure is
// surfaced as an io/read-failed issue in the bag rather than an error return,
// so a bad file inside a batch does not abort the run.
func CheckFile(fileSet *source.FileSet, path string, opts Options) FileResult {
	timer := observ.NewTimer()
	timer.Start("load")

	fileID, err := fileSet.Load(path)
	if err != nil {
		bag := diag.NewBag(opts.Checker.MaxIssues)
		bag.Add(diag.NewError(diag.IOReadFailed, source.Span{}, "failed to read "+path+": "+err.Error()))
		return FileResult{Path: path, Bag: bag, Timing: timer.Report()}
	}

	timer.Start("check")
	bag := checker.New(opts.Checker).Check(fileSet.Get(fileID))
	timer.Stop()

	return FileResult{
		Path:   path,
		FileID: fileID,
		Bag:    bag,
		Timing: timer.Report(),
	}
}

// CheckText checks an in-memory document under the given display name.
func CheckText(fileSet *source.FileSet, name string, text []byte, opts Options) FileResult {
	timer := observ.NewTimer()
	timer.Start("check")

	text, normFlags := source.Normalize(text)
	fileID := fileSet.Add(name, text, source.FileVirtual|normFlags)
	bag := checker.New(opts.Checker).Check(fileSet.Get(fileID))
	timer.Stop()

	return FileResult{
		Path:   name,
		FileID: fileID,
		Bag:    bag,
		Timing: timer.Report(),
	}
}

// CheckStdin reads standard input to EOF and checks it as "<stdin>".
func CheckStdin(fileSet *source.FileSet, opts Options) (FileResult, error) {
	text, err := io.ReadAll(os.Stdin)
	if err != nil {
		return FileResult{}, err
	}
	return CheckText(fileSet, "<stdin>", text, opts), nil
}
