package strategy

import "errors"

var InsufficientFundsError = errors.New("insufficient funds")
var NoEligibleTargetError = errors.New("no eligible target")
var InconsistentSnapshotError = errors.New("inconsistent snapshot")
