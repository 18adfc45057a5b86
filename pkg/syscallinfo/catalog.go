// Package syscallinfo is the static, process-wide mapping from an x86-64
// syscall number to its name and argument shape.
//
// The table below is hand-maintained; scripts/gensyscalls documents how to
// regenerate it from a kernel checkout's
// arch/x86/entry/syscalls/syscall_64.tbl. The table itself is checked in so
// the package has no build-time dependency on kernel headers.
package syscallinfo

// Info describes one syscall: its name and the declared type of each of its
// arguments. ArgTypes has length ArgCount and is never mutated after
// initialization.
type Info struct {
	Name     string
	ArgCount int
	ArgTypes []string
}

// catalog is immutable after package initialization and is never written to
// again; Lookup only ever reads from it.
var catalog = map[int64]Info{}

func reg(number int64, name string, argTypes ...string) {
	catalog[number] = Info{Name: name, ArgCount: len(argTypes), ArgTypes: argTypes}
}

// Lookup returns the Info for a syscall number and whether it was found.
// Absent numbers are the caller's responsibility to render with a numeric
// placeholder.
func Lookup(number int64) (Info, bool) {
	info, ok := catalog[number]
	return info, ok
}

func init() {
	reg(0, "read", "unsigned int", "char *", "size_t")
	reg(1, "write", "unsigned int", "const char *", "size_t")
	reg(2, "open", "const char *", "int", "umode_t")
	reg(3, "close", "unsigned int")
	reg(4, "stat", "const char *", "struct stat *")
	reg(5, "fstat", "unsigned int", "struct stat *")
	reg(6, "lstat", "const char *", "struct stat *")
	reg(7, "poll", "struct pollfd *", "unsigned int", "int")
	reg(8, "lseek", "unsigned int", "off_t", "unsigned int")
	reg(9, "mmap", "unsigned long", "unsigned long", "unsigned long", "unsigned long", "unsigned long", "unsigned long")
	reg(10, "mprotect", "unsigned long", "size_t", "unsigned long")
	reg(11, "munmap", "unsigned long", "size_t")
	reg(12, "brk", "unsigned long")
	reg(13, "rt_sigaction", "int", "const struct sigaction *", "struct sigaction *", "size_t")
	reg(14, "rt_sigprocmask", "int", "sigset_t *", "sigset_t *", "size_t")
	reg(15, "rt_sigreturn")
	reg(16, "ioctl", "unsigned int", "unsigned int", "unsigned long")
	reg(17, "pread64", "unsigned int", "char *", "size_t", "loff_t")
	reg(18, "pwrite64", "unsigned int", "const char *", "size_t", "loff_t")
	reg(19, "readv", "unsigned long", "const struct iovec *", "unsigned long")
	reg(20, "writev", "unsigned long", "const struct iovec *", "unsigned long")
	reg(21, "access", "const char *", "int")
	reg(22, "pipe", "int *")
	reg(23, "select", "int", "fd_set *", "fd_set *", "fd_set *", "struct timeval *")
	reg(24, "sched_yield")
	reg(25, "mremap", "unsigned long", "unsigned long", "unsigned long", "unsigned long", "unsigned long")
	reg(26, "msync", "unsigned long", "size_t", "int")
	reg(27, "mincore", "unsigned long", "size_t", "unsigned char *")
	reg(28, "madvise", "unsigned long", "size_t", "int")
	reg(29, "shmget", "key_t", "size_t", "int")
	reg(30, "shmat", "int", "char *", "int")
	reg(31, "shmctl", "int", "int", "struct shmid_ds *")
	reg(32, "dup", "unsigned int")
	reg(33, "dup2", "unsigned int", "unsigned int")
	reg(34, "pause")
	reg(35, "nanosleep", "const struct timespec *", "struct timespec *")
	reg(36, "getitimer", "int", "struct itimerval *")
	reg(37, "alarm", "unsigned int")
	reg(38, "setitimer", "int", "struct itimerval *", "struct itimerval *")
	reg(39, "getpid")
	reg(40, "sendfile", "int", "int", "off_t *", "size_t")
	reg(41, "socket", "int", "int", "int")
	reg(42, "connect", "int", "struct sockaddr *", "int")
	reg(43, "accept", "int", "struct sockaddr *", "int *")
	reg(44, "sendto", "int", "void *", "size_t", "unsigned int", "struct sockaddr *", "int")
	reg(45, "recvfrom", "int", "void *", "size_t", "unsigned int", "struct sockaddr *", "int *")
	reg(46, "sendmsg", "int", "struct msghdr *", "unsigned int")
	reg(47, "recvmsg", "int", "struct msghdr *", "unsigned int")
	reg(48, "shutdown", "int", "int")
	reg(49, "bind", "int", "struct sockaddr *", "int")
	reg(50, "listen", "int", "int")
	reg(51, "getsockname", "int", "struct sockaddr *", "int *")
	reg(52, "getpeername", "int", "struct sockaddr *", "int *")
	reg(53, "socketpair", "int", "int", "int", "int *")
	reg(54, "setsockopt", "int", "int", "int", "char *", "int")
	reg(55, "getsockopt", "int", "int", "int", "char *", "int *")
	reg(56, "clone", "unsigned long", "unsigned long", "int *", "int *", "unsigned long")
	reg(57, "fork")
	reg(58, "vfork")
	reg(59, "execve", "const char *", "const char *const *", "const char *const *")
	reg(60, "exit", "int")
	reg(61, "wait4", "pid_t", "int *", "int", "struct rusage *")
	reg(62, "kill", "pid_t", "int")
	reg(63, "uname", "struct old_utsname *")
	reg(72, "fcntl", "unsigned int", "unsigned int", "unsigned long")
	reg(73, "flock", "unsigned int", "unsigned int")
	reg(74, "fsync", "unsigned int")
	reg(75, "fdatasync", "unsigned int")
	reg(76, "truncate", "const char *", "long")
	reg(77, "ftruncate", "unsigned int", "unsigned long")
	reg(78, "getdents", "unsigned int", "struct linux_dirent *", "unsigned int")
	reg(79, "getcwd", "char *", "unsigned long")
	reg(80, "chdir", "const char *")
	reg(81, "fchdir", "unsigned int")
	reg(82, "rename", "const char *", "const char *")
	reg(83, "mkdir", "const char *", "umode_t")
	reg(84, "rmdir", "const char *")
	reg(85, "creat", "const char *", "umode_t")
	reg(86, "link", "const char *", "const char *")
	reg(87, "unlink", "const char *")
	reg(88, "symlink", "const char *", "const char *")
	reg(89, "readlink", "const char *", "char *", "int")
	reg(90, "chmod", "const char *", "umode_t")
	reg(91, "fchmod", "unsigned int", "umode_t")
	reg(92, "chown", "const char *", "uid_t", "gid_t")
	reg(93, "fchown", "unsigned int", "uid_t", "gid_t")
	reg(94, "lchown", "const char *", "uid_t", "gid_t")
	reg(95, "umask", "int")
	reg(96, "gettimeofday", "struct timeval *", "struct timezone *")
	reg(97, "getrlimit", "unsigned int", "struct rlimit *")
	reg(98, "getrusage", "int", "struct rusage *")
	reg(99, "sysinfo", "struct sysinfo *")
	reg(100, "times", "struct tms *")
	reg(101, "ptrace", "long", "long", "unsigned long", "unsigned long")
	reg(102, "getuid")
	reg(104, "getgid")
	reg(105, "setuid", "uid_t")
	reg(106, "setgid", "gid_t")
	reg(107, "geteuid")
	reg(108, "getegid")
	reg(109, "setpgid", "pid_t", "pid_t")
	reg(110, "getppid")
	reg(111, "getpgrp")
	reg(112, "setsid")
	reg(115, "getgroups", "int", "gid_t *")
	reg(116, "setgroups", "int", "gid_t *")
	reg(121, "getpgid", "pid_t")
	reg(124, "getsid", "pid_t")
	reg(137, "statfs", "const char *", "struct statfs *")
	reg(138, "fstatfs", "unsigned int", "struct statfs *")
	reg(157, "prctl", "int", "unsigned long", "unsigned long", "unsigned long", "unsigned long")
	reg(158, "arch_prctl", "int", "unsigned long")
	reg(160, "setrlimit", "unsigned int", "struct rlimit *")
	reg(161, "chroot", "const char *")
	reg(162, "sync")
	reg(165, "mount", "char *", "char *", "char *", "unsigned long", "void *")
	reg(166, "umount2", "char *", "int")
	reg(186, "gettid")
	reg(187, "readahead", "int", "loff_t", "size_t")
	reg(191, "getxattr", "const char *", "const char *", "void *", "size_t")
	reg(202, "futex", "unsigned long", "int", "unsigned int", "struct timespec *")
	reg(217, "getdents64", "unsigned int", "struct linux_dirent64 *", "unsigned int")
	reg(218, "set_tid_address", "int *")
	reg(228, "clock_gettime", "clockid_t", "struct timespec *")
	reg(229, "clock_getres", "clockid_t", "struct timespec *")
	reg(230, "clock_nanosleep", "clockid_t", "int", "const struct timespec *", "struct timespec *")
	reg(231, "exit_group", "int")
	reg(232, "epoll_wait", "int", "struct epoll_event *", "int", "int")
	reg(233, "epoll_ctl", "int", "int", "int", "struct epoll_event *")
	reg(234, "tgkill", "pid_t", "pid_t", "int")
	reg(257, "openat", "int", "const char *", "int", "umode_t")
	reg(258, "mkdirat", "int", "const char *", "umode_t")
	reg(259, "mknodat", "int", "const char *", "umode_t", "unsigned int")
	reg(260, "fchownat", "int", "const char *", "uid_t", "gid_t", "int")
	reg(262, "newfstatat", "int", "const char *", "struct stat *", "int")
	reg(263, "unlinkat", "int", "const char *", "int")
	reg(264, "renameat", "int", "const char *", "int", "const char *")
	reg(265, "linkat", "int", "const char *", "int", "const char *", "int")
	reg(266, "symlinkat", "const char *", "int", "const char *")
	reg(267, "readlinkat", "int", "const char *", "char *", "int")
	reg(268, "fchmodat", "int", "const char *", "umode_t")
	reg(269, "faccessat", "int", "const char *", "int")
	reg(270, "pselect6", "int", "fd_set *", "fd_set *", "fd_set *", "struct timespec *", "void *")
	reg(271, "ppoll", "struct pollfd *", "unsigned int", "struct timespec *", "const sigset_t *")
	reg(272, "unshare", "unsigned long")
	reg(273, "set_robust_list", "struct robust_list_head *", "size_t")
	reg(281, "epoll_pwait", "int", "struct epoll_event *", "int", "int", "const sigset_t *")
	reg(282, "signalfd", "int", "sigset_t *", "size_t")
	reg(283, "timerfd_create", "int", "int")
	reg(284, "eventfd", "unsigned int")
	reg(285, "fallocate", "int", "int", "loff_t", "loff_t")
	reg(288, "accept4", "int", "struct sockaddr *", "int *", "int")
	reg(290, "eventfd2", "unsigned int", "int")
	reg(291, "epoll_create1", "int")
	reg(292, "dup3", "unsigned int", "unsigned int", "int")
	reg(293, "pipe2", "int *", "int")
	reg(302, "prlimit64", "pid_t", "unsigned int", "const struct rlimit64 *", "struct rlimit64 *")
	reg(316, "renameat2", "int", "const char *", "int", "const char *", "unsigned int")
	reg(317, "seccomp", "unsigned int", "unsigned int", "void *")
	reg(318, "getrandom", "char *", "size_t", "unsigned int")
	reg(319, "memfd_create", "const char *", "unsigned int")
	reg(322, "execveat", "int", "const char *", "const char *const *", "const char *const *", "int")
	reg(332, "statx", "int", "const char *", "int", "unsigned int", "struct statx *")
	reg(334, "rseq", "struct rseq *", "uint32_t", "int", "uint32_t")
	reg(435, "clone3", "struct clone_args *", "size_t")
	reg(437, "openat2", "int", "const char *", "struct open_how *", "size_t")
	reg(439, "faccessat2", "int", "const char *", "int", "int")
	reg(441, "epoll_pwait2", "int", "struct epoll_event *", "int", "const struct timespec *", "const sigset_t *")
}
