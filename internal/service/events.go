package service

// Event 领域事件
// 服务层在事务提交后返回事件，由调用方决定投递方式，
// 避免队列不可用时阻塞下单等核心流程。
type Event struct {
	Task            string // constants.Task* 任务名
	OrderID         uint
	UserID          uint
	AffiliateUserID uint
	WithdrawalID    uint
	Status          string
}
