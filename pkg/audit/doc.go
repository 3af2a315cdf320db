// Package audit provides tamper-evident audit logging.
//
// Events are emitted twice: as RFC5424 syslog lines on stdout and as rows
// in the audit_logs table, where each row is hash-chained to its
// predecessor within the organization. EntryHash and VerifyChain define
// the chain; the durable store lives in pkg/server/store/gorm and is
// installed with SetPersister at server boot.
package audit
