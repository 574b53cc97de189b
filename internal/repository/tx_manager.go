package repository

import "context"

// トランザクション内で使う約束
type TxRepos interface {
	Products() ProductRepository
	Specifications() SpecificationRepository
	Warranties() WarrantyRepository
	Questions() QuestionRepository
	Answers() AnswerRepository
}

// UsecaseからTxの開始/commit/rollbackを隠す。
// 複数テーブルをまたぐ書き込み（商品作成のカスケード、質問削除など）は
// 必ずこの中で行う。
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
