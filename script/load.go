package script

import (
	"fmt"
	"linklist/util"
	"os"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"golang.org/x/net/html/charset"
)

const (
	readAttempts = 3
	readDelay    = 50 * time.Millisecond

	byteOrderMark = "\ufeff"
)

// Load reads, decodes and parses the script file at scriptPath.
func Load(scriptPath string) (*util.List[Op], error) {
	var contentBytes []byte
	err := retry.Do(
		func() error {
			var readErr error
			contentBytes, readErr = os.ReadFile(scriptPath)
			return readErr
		},
		retry.Attempts(readAttempts),
		retry.Delay(readDelay),
		retry.RetryIf(func(err error) bool {
			return !os.IsNotExist(err) && !os.IsPermission(err)
		}),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, &util.ErrorWithCode{
			StatusCode:    util.ERROR_BAD_SCRIPT_PATH,
			InternalError: fmt.Errorf("failed to read script at '%v': %w", scriptPath, err),
		}
	}

	encoding, _, _ := charset.DetermineEncoding(contentBytes, "")
	decodedBytes, err := encoding.NewDecoder().Bytes(contentBytes)
	if err != nil {
		return nil, &util.ErrorWithCode{
			StatusCode:    util.ERROR_BAD_SCRIPT,
			InternalError: fmt.Errorf("failed to decode script at '%v': %w", scriptPath, err),
		}
	}

	return Parse(strings.TrimPrefix(string(decodedBytes), byteOrderMark))
}
