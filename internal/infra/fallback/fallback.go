// Package fallback は一次ストア（DB）と二次ストア（インメモリ）を
// 優先順で束ねる。一次側の接続系エラーは呼び出し元に出さず、同じ操作を
// 二次側でやり直す。
package fallback

import (
	"errors"

	repo "shop/internal/repository"
)

// ドメイン由来のエラーはどちらのストアが返しても素通しする。
// それ以外は「ストア不通」とみなして切り替える
func shouldFailover(err error) bool {
	return !errors.Is(err, repo.ErrNotFound) && !errors.Is(err, repo.ErrInsufficientStock)
}
